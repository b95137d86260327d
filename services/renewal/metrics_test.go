package renewal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEtherToWei(t *testing.T) {
	wei, err := EtherToWei("0.03")
	require.NoError(t, err)
	require.Equal(t, 0, wei.Cmp(finneys(30)))

	wei, err = EtherToWei("0.000000000000000001")
	require.NoError(t, err)
	require.Equal(t, int64(1), wei.Int64())

	_, err = EtherToWei("0.0000000000000000015")
	require.Error(t, err)

	_, err = EtherToWei("one")
	require.Error(t, err)
}

func TestWeiToEther(t *testing.T) {
	require.Equal(t, "0.03", WeiToEther(finneys(30)).String())
	require.Equal(t, "0", WeiToEther(nil).String())
}
