package code_test

import (
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents", "Hôtel Ça Va", "hotel-ca-va"},
		{"punctuation", "  Joe's Brew & Co. ", "joe-s-brew-co"},
		{"digits", "Salon 42", "salon-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := code.FromName(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, v := range []string{"", "a", "Upper", "two--dashes", "-lead", "trail-", "sp ace"} {
		_, err := code.Parse(v)
		require.Error(t, err, v)
	}
}
