// Package dbtest contains supporting code for running tests that hit the DB.
package dbtest

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus/stores/appointmentdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus/stores/ingredientdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus/stores/orderdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus/stores/productdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus/stores/reservationdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantcache"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// BusDomain represents all the business domain apis needed for testing.
type BusDomain struct {
	Tenant      *tenantbus.Core
	User        *userbus.Core
	Reservation *reservationbus.Core
	Ingredient  *ingredientbus.Core
	Order       *orderbus.Core
	Appointment *appointmentbus.Core
	Product     *productbus.Core
}

func newBusDomains(log *logger.Logger, db *sqlx.DB) BusDomain {
	return BusDomain{
		Tenant:      tenantbus.NewCore(log, tenantcache.NewStore(log, tenantdb.NewStore(log, db), time.Minute)),
		User:        userbus.NewCore(userdb.NewStore(log, db)),
		Reservation: reservationbus.NewCore(reservationdb.NewStore(log, db)),
		Ingredient:  ingredientbus.NewCore(ingredientdb.NewStore(log, db)),
		Order:       orderbus.NewCore(orderdb.NewStore(log, db)),
		Appointment: appointmentbus.NewCore(appointmentdb.NewStore(log, db)),
		Product:     productbus.NewCore(productdb.NewStore(log, db)),
	}
}

// =============================================================================

// Database owns state for running and shutting down tests.
type Database struct {
	DB        *sqlx.DB
	Log       *logger.Logger
	BusDomain BusDomain
}

// New creates a fresh sqlite database with the full schema for the test.
// The log output is printed when the test fails.
func New(t *testing.T, testName string) *Database {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("Opening database connection: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("Applying schema: %v", err)
	}

	// -------------------------------------------------------------------------

	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "TEST", func(ctx context.Context) string { return otel.GetTraceID(ctx) })

	t.Cleanup(func() {
		t.Helper()

		db.Close()

		if t.Failed() {
			fmt.Printf("******************** LOGS (%s) ********************\n\n", testName)
			fmt.Print(buf.String())
			fmt.Printf("******************** LOGS (%s) ********************\n", testName)
		}
	})

	return &Database{
		DB:        db,
		Log:       log,
		BusDomain: newBusDomains(log, db),
	}
}

// Beginner returns a transaction starter for the test database.
func (db *Database) Beginner() sqldb.Beginner {
	return sqldb.NewBeginner(db.DB)
}

// =============================================================================

// StringPointer is a helper to get a *string from a string. It is in the tests
// package because we normally don't want to deal with pointers to basic types
// but it's useful in some tests.
func StringPointer(s string) *string {
	return &s
}

// IntPointer is a helper to get a *int from a int. It is in the tests package
// because we normally don't want to deal with pointers to basic types but it's
// useful in some tests.
func IntPointer(i int) *int {
	return &i
}

// BoolPointer is a helper to get a *bool from a bool. It is in the tests package
// because we normally don't want to deal with pointers to basic types but it's
// useful in some tests.
func BoolPointer(b bool) *bool {
	return &b
}
