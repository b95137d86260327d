package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
)

func TestNewConfigFromJSON(t *testing.T) {
	config, err := NewConfigFromJSON(`{
		"ChainId": 11155111,
		"Providers": [{"Name": "main", "URL": "https://rpc.example.org"}],
		"Referrer": "grails",
		"Variant": "inference",
		"LogConfig": {"Level": "DEBUG"}
	}`)
	require.NoError(t, err)
	require.Equal(t, uint64(SepoliaChainID), config.ChainID)
	require.Equal(t, "DEBUG", config.LogConfig.Level)
	// defaults survive a partial override
	require.Equal(t, 3, config.LogConfig.MaxBackups)
	require.Equal(t, 10000, config.CircuitBreaker.Timeout)

	controller, err := config.Controller()
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xFED6a969AaA60E4961FCD3EBF1A2e8913ac65B72"), controller)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{name: "defaults", json: `{}`},
		{name: "unknown variant", json: `{"Variant": "magic"}`, wantErr: true},
		{name: "passthrough without referral controller", json: `{"Variant": "passthrough"}`, wantErr: true},
		{name: "passthrough", json: `{"Variant": "passthrough", "ReferralControllerAddress": "0x00000000000000000000000000000000000000aa"}`},
		{name: "bad address", json: `{"ControllerAddress": "0x1234"}`, wantErr: true},
		{name: "missing chain", json: `{"ChainId": 0}`, wantErr: true},
		{name: "bad provider url", json: `{"Providers": [{"Name": "main", "URL": "not a url"}]}`, wantErr: true},
		{name: "duplicate provider", json: `{"Providers": [{"Name": "a", "URL": "http://a"}, {"Name": "a", "URL": "http://b"}]}`, wantErr: true},
		{name: "provider name with slash", json: `{"Providers": [{"Name": "a/b", "URL": "http://a"}]}`, wantErr: true},
		{name: "bad log level", json: `{"LogConfig": {"Level": "TRACE"}}`, wantErr: true},
		{name: "bad metrics address", json: `{"MetricsAddress": "localhost"}`, wantErr: true},
		{name: "metrics address", json: `{"MetricsAddress": "localhost:9305"}`},
		{name: "unknown field", json: `{"Colour": "blue"}`, wantErr: true},
		{name: "referrer too long", json: `{"Referrer": "0123456789012345678901234567890123"}`, wantErr: true},
		{name: "referrer bad hex", json: `{"Referrer": "0xzz"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfigFromJSON(tc.json)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReferrerID(t *testing.T) {
	config := NewConfig()

	id, err := config.ReferrerID()
	require.NoError(t, err)
	require.Equal(t, [32]byte{}, id)

	config.Referrer = "0xabc"
	id, err = config.ReferrerID()
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x0abc"), common.Hash(id))

	config.Referrer = "grails"
	id, err = config.ReferrerID()
	require.NoError(t, err)
	require.Equal(t, []byte("grails"), id[:6])
	require.Equal(t, make([]byte, 26), id[6:])
}

func TestControllerUnknownChain(t *testing.T) {
	config := NewConfig()
	config.ChainID = 1337
	_, err := config.Controller()
	require.Error(t, err)

	config.ControllerAddress = "0x00000000000000000000000000000000000000aa"
	addr, err := config.Controller()
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xaa"), addr)
}

func TestSaveAndLoad(t *testing.T) {
	config := NewConfig()
	config.DataDir = t.TempDir()
	config.Referrer = "grails"
	config.DatabasePassword = "secret"
	require.NoError(t, config.Save())

	loaded, err := LoadConfigFromFile(filepath.Join(config.DataDir, ConfigFileName))
	require.NoError(t, err)
	require.Equal(t, "grails", loaded.Referrer)
	require.Empty(t, loaded.DatabasePassword)

	_, err = LoadConfigFromFile(filepath.Join(config.DataDir, "missing.json"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

