package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/services/renewal"
	"github.com/grailsmarket/ens-referrals/signal"
)

func runApp(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"ens-renewal"}, args...))
	return out.String(), err
}

func TestParsePrices(t *testing.T) {
	prices, err := parsePrices([]string{"Alice.eth=0.01", "bob=2"})
	require.NoError(t, err)
	require.Len(t, prices, 2)
	require.Equal(t, 0, prices["alice"].Cmp(big.NewInt(10_000_000_000_000_000)))
	require.Equal(t, "2000000000000000000", prices["bob"].String())

	_, err = parsePrices([]string{"alice"})
	require.Error(t, err)
	_, err = parsePrices([]string{"alice=abc"})
	require.Error(t, err)
	_, err = parsePrices([]string{"alice=-1"})
	require.Error(t, err)
	_, err = parsePrices([]string{"a.b=1"})
	require.Error(t, err)
}

func TestSimulatePrintsReceipt(t *testing.T) {
	out, err := runApp(t, "simulate",
		"--value", "0.05",
		"--price", "alice=0.01",
		"--price", "bob=0.02",
		"alice", "bob.eth",
	)
	require.NoError(t, err)
	require.Contains(t, out, "variant   inference")
	require.Contains(t, out, "spent     0.03 ETH")
	require.Contains(t, out, "refunded  0.02 ETH")
	require.Contains(t, out, "renewed   alice.eth for 0.01 ETH")
	require.Contains(t, out, "referral  bob.eth cost 0.02 ETH")
	require.NotContains(t, out, "swept")
}

func TestSimulateSweepsPreexistingBalance(t *testing.T) {
	out, err := runApp(t, "simulate",
		"--value", "0.05",
		"--preexisting", "1",
		"--price", "alice=0.01",
		"alice",
	)
	require.NoError(t, err)
	require.Contains(t, out, "refunded  1.04 ETH")
	require.Contains(t, out, "swept     1 ETH")
}

func TestSimulateUnderpaymentFails(t *testing.T) {
	_, err := runApp(t, "simulate",
		"--value", "0.01",
		"--price", "alice=0.01",
		"--price", "bob=0.02",
		"alice", "bob",
	)
	require.Error(t, err)
}

func TestSimulateStoresReceipts(t *testing.T) {
	dataDir := t.TempDir()

	_, err := runApp(t, "--data-dir", dataDir, "simulate",
		"--value", "0.02",
		"--price", "alice=0.01",
		"alice",
	)
	require.NoError(t, err)

	out, err := runApp(t, "--data-dir", dataDir, "receipts", "--limit", "5")
	require.NoError(t, err)
	require.Contains(t, out, "spent     0.01 ETH")
	require.Contains(t, out, "referral  alice.eth cost 0.01 ETH")
}

func TestReceiptsRequiresDataDir(t *testing.T) {
	_, err := runApp(t, "receipts")
	require.Error(t, err)
}

func TestSignalsAreWrittenAsJSONLines(t *testing.T) {
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run([]string{"ens-renewal", "--signals", "simulate", "--value", "0.02", "--price", "alice=0.01", "alice"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 1)
	var envelope signal.Envelope
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &envelope))
	require.Equal(t, string(signal.RenewalCompleted), envelope.Type)

	// Without the flag nothing is written.
	errOut.Reset()
	app = newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	require.NoError(t, app.Run([]string{"ens-renewal", "simulate", "--value", "0.02", "--price", "alice=0.01", "alice"}))
	require.Empty(t, errOut.String())
}

func TestParseFunds(t *testing.T) {
	payer := common.HexToAddress("0x000000000000000000000000000000000000bEEF")
	funds, err := parseFunds([]string{payer.Hex() + "=1.5"})
	require.NoError(t, err)
	require.Equal(t, "1500000000000000000", funds[payer].String())

	_, err = parseFunds([]string{"0xnothex=1"})
	require.Error(t, err)
	_, err = parseFunds([]string{payer.Hex()})
	require.Error(t, err)
}

func TestServeRequiresPrices(t *testing.T) {
	_, err := runApp(t, "serve")
	require.Error(t, err)
}

func TestRenewalServiceOverRPC(t *testing.T) {
	ctx := context.Background()
	payer := common.HexToAddress("0x000000000000000000000000000000000000bEEF")
	finney := big.NewInt(1e15)
	ether := new(big.Int).Mul(big.NewInt(1000), finney)

	service, sim, err := newRenewalService(ctx, params.NewConfig(),
		fixedPricing(map[string]*big.Int{"alice": new(big.Int).Mul(big.NewInt(10), finney)}),
		map[common.Address]*big.Int{payer: ether},
		nil, time.Now,
	)
	require.NoError(t, err)

	server, err := newRPCServer(service)
	require.NoError(t, err)
	defer server.Stop()
	client := gethrpc.DialInProc(server)
	defer client.Close()

	year := big.NewInt(365 * 24 * 60 * 60)
	var receipt renewal.Receipt
	err = client.CallContext(ctx, &receipt, "renewal_renewBatch", payer, new(big.Int).Mul(big.NewInt(30), finney), []string{"alice.eth"}, []*big.Int{year})
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, receipt.Labels)
	require.Equal(t, 0, receipt.Spent.Cmp(new(big.Int).Mul(big.NewInt(10), finney)))
	require.Equal(t, 0, sim.ledger.BalanceOf(payer).Cmp(new(big.Int).Mul(big.NewInt(990), finney)))

	err = client.CallContext(ctx, &receipt, "renewal_renewBatch", payer, finney, []string{"bob"}, []*big.Int{year})
	require.Error(t, err)
}
