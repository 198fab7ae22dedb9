package page_test

import (
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	pg, err := page.Parse("", "")
	require.NoError(t, err)
	require.Equal(t, 1, pg.Number())
	require.Equal(t, 10, pg.RowsPerPage())
	require.Equal(t, 0, pg.Offset())
}

func TestParseOffset(t *testing.T) {
	pg := page.MustParse("3", "25")
	require.Equal(t, 50, pg.Offset())
}

func TestParseErrors(t *testing.T) {
	for _, in := range [][2]string{{"0", "10"}, {"1", "0"}, {"1", "101"}, {"x", "10"}, {"1", "y"}} {
		_, err := page.Parse(in[0], in[1])
		require.Error(t, err, "page=%s rows=%s", in[0], in[1])
	}
}
