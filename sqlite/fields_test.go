package sqlite

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigIntRoundTrip(t *testing.T) {
	wei, ok := new(big.Int).SetString("50000000000000000000000000", 10)
	require.True(t, ok)

	value, err := BigInt{wei}.Value()
	require.NoError(t, err)
	require.Equal(t, "50000000000000000000000000", value)

	var scanned BigInt
	require.NoError(t, scanned.Scan(value))
	require.Equal(t, 0, wei.Cmp(scanned.Int))

	require.NoError(t, scanned.Scan([]byte("7")))
	require.Equal(t, int64(7), scanned.Int64())

	require.NoError(t, scanned.Scan(nil))
	require.Nil(t, scanned.Int)

	value, err = BigInt{}.Value()
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestBigIntScanErrors(t *testing.T) {
	var scanned BigInt
	require.Error(t, scanned.Scan("0x10"))
	require.Error(t, scanned.Scan(int64(10)))
}

func TestJSONBlob(t *testing.T) {
	labels := []string{"alice", "bob"}
	value, err := (&JSONBlob{&labels}).Value()
	require.NoError(t, err)

	var decoded []string
	require.NoError(t, (&JSONBlob{&decoded}).Scan(value))
	require.Equal(t, labels, decoded)

	require.Error(t, (&JSONBlob{&decoded}).Scan("text"))
}
