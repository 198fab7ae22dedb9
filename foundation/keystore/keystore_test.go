package keystore_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jcpaschoal/vertical-suite/foundation/keystore"
	"github.com/stretchr/testify/require"
)

func TestLoadByFileSystem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, keystore.GenerateKey(&buf))

	fsys := fstest.MapFS{
		"keys/54bb2165-71e1-41a6-af3e-7da4a0e1e2c1.pem": {Data: buf.Bytes()},
		"keys/README.txt": {Data: []byte("ignored")},
	}

	ks := keystore.New()

	n, err := ks.LoadByFileSystem(fsys)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	priv, err := ks.PrivateKey("54bb2165-71e1-41a6-af3e-7da4a0e1e2c1")
	require.NoError(t, err)
	require.Equal(t, buf.String(), priv)

	pub, err := ks.PublicKey("54bb2165-71e1-41a6-af3e-7da4a0e1e2c1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(pub, "-----BEGIN PUBLIC KEY-----"))
}

func TestUnknownKID(t *testing.T) {
	ks := keystore.New()

	_, err := ks.PrivateKey("missing")
	require.Error(t, err)

	_, err = ks.PublicKey("missing")
	require.Error(t, err)
}

func TestLoadKeyRejectsGarbage(t *testing.T) {
	ks := keystore.New()
	require.Error(t, ks.LoadKey("bad", []byte("not a pem")))
}
