//go:build integration

package migrate_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantdb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/migrate"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T, ctx context.Context) sqldb.Config {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return sqldb.Config{
		User:         "test",
		Password:     "test",
		Host:         fmt.Sprintf("%s:%s", host, port.Port()),
		Name:         "testdb",
		MaxIdleConns: 2,
		MaxOpenConns: 4,
		DisableTLS:   true,
	}
}

func TestIntegration_Migrate(t *testing.T) {
	ctx := context.Background()
	cfg := setupPostgres(t, ctx)

	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "TEST", func(context.Context) string { return "" })

	t.Cleanup(func() {
		if t.Failed() {
			t.Log(buf.String())
		}
	})

	st, err := migrate.CurrentStatus(ctx, log, sqldb.URL(cfg))
	require.NoError(t, err)
	require.Equal(t, 0, st.CurrentVersion)
	require.NotEmpty(t, st.Pending)

	require.NoError(t, migrate.Migrate(ctx, log, sqldb.URL(cfg)))

	st, err = migrate.CurrentStatus(ctx, log, sqldb.URL(cfg))
	require.NoError(t, err)
	require.Empty(t, st.Pending)
	require.Equal(t, st.Total, st.CurrentVersion)

	// Running again is a no-op.
	require.NoError(t, migrate.Migrate(ctx, log, sqldb.URL(cfg)))

	db, err := sqldb.Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, sqldb.StatusCheck(ctx, db))

	api := tenantbus.NewCore(log, tenantdb.NewStore(log, db))

	tnt, err := api.Create(ctx, tenantbus.NewTenant{Name: "Harbor Brewing", Vertical: vertical.Brewery})
	require.NoError(t, err)
	require.Equal(t, "harbor-brewing", tnt.Code.String())

	_, err = api.Create(ctx, tenantbus.NewTenant{Name: "Harbor Brewing", Vertical: vertical.Brewery})
	require.ErrorIs(t, err, tenantbus.ErrUniqueCode)

	stats, err := api.Stats(ctx, tnt)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Rows["products"])
}
