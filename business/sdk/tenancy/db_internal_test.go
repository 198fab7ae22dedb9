package tenancy

import (
	"context"
	"io"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func Test_PlaceholderPerDriver(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", func(context.Context) string { return "" })

	table := []struct {
		driver string
		want   string
	}{
		{driver: "pgx", want: "SELECT name FROM products WHERE sku = $1"},
		{driver: "sqlite3", want: "SELECT name FROM products WHERE sku = ?"},
	}

	for _, tt := range table {
		t.Run(tt.driver, func(t *testing.T) {
			d := NewDB(log, sqlx.NewDb(nil, tt.driver), Bypass("placeholder test"))

			query, args, err := d.sb.Select("name").From("products").Where(sq.Eq{"sku": "MUG-01"}).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.want, query)
			require.Equal(t, []any{"MUG-01"}, args)
		})
	}
}
