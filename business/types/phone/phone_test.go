package phone_test

import (
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	table := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "+55 (11) 98765-4321", want: "+5511987654321"},
		{in: "555.123.4567", want: "5551234567"},
		{in: "12345", err: true},
		{in: "55+11987654", err: true},
		{in: "call me", err: true},
	}

	for _, tt := range table {
		t.Run(tt.in, func(t *testing.T) {
			p, err := phone.Parse(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, p.String())
		})
	}
}

func Test_ParseNull(t *testing.T) {
	n, err := phone.ParseNull("  ")
	require.NoError(t, err)
	require.False(t, n.Valid())
	require.False(t, phone.ToSQLNullString(n).Valid)

	n, err = phone.ParseNull("+1 202 555 0147")
	require.NoError(t, err)
	require.True(t, n.Valid())
	require.Equal(t, "+12025550147", phone.ToSQLNullString(n).String)
}
