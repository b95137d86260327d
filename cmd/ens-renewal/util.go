package main

import (
	"database/sql"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/services/renewal"
	"github.com/grailsmarket/ens-referrals/services/renewal/migrations"
	"github.com/grailsmarket/ens-referrals/services/renewal/upstream"
	"github.com/grailsmarket/ens-referrals/sqlite"
)

const receiptsDBFileName = "receipts.db"

// loadConfig reads the configuration file, when given, and applies flag
// overrides on top of it.
func loadConfig(cCtx *cli.Context) (*params.Config, error) {
	config := params.NewConfig()
	if path := cCtx.String(ConfigFlag); path != "" {
		var err error
		config, err = params.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	if level := cCtx.String(LogLevelFlag); level != "" {
		config.LogConfig.Level = strings.ToUpper(level)
	}
	if file := cCtx.String(LogFileFlag); file != "" {
		config.LogConfig.File = file
	}
	if dataDir := cCtx.String(DataDirFlag); dataDir != "" {
		config.DataDir = dataDir
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// openReceiptsDB opens the receipts database in the data dir. It returns nil
// when no data dir is configured.
func openReceiptsDB(config *params.Config) (*sql.DB, error) {
	if config.DataDir == "" {
		return nil, nil
	}
	db, err := sqlite.OpenDB(filepath.Join(config.DataDir, receiptsDBFileName), config.DatabasePassword)
	if err != nil {
		return nil, errors.Wrap(err, "open receipts database")
	}
	if err := migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate receipts database")
	}
	return db, nil
}

// durationSeconds converts the duration flag into registrar seconds.
func durationSeconds(cCtx *cli.Context) (*big.Int, error) {
	d := cCtx.Duration(DurationFlag)
	if d < time.Second {
		return nil, fmt.Errorf("duration %s is shorter than a second", d)
	}
	return big.NewInt(int64(d / time.Second)), nil
}

func repeat(duration *big.Int, n int) []*big.Int {
	durations := make([]*big.Int, n)
	for i := range durations {
		durations[i] = duration
	}
	return durations
}

// parsePrices parses name=ether pairs into yearly prices in wei.
func parsePrices(pairs []string) (map[string]*big.Int, error) {
	prices := make(map[string]*big.Int, len(pairs))
	for _, pair := range pairs {
		name, ether, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("price %q is not name=ether", pair)
		}
		label, err := renewal.NormaliseLabel(name)
		if err != nil {
			return nil, err
		}
		wei, err := renewal.EtherToWei(ether)
		if err != nil {
			return nil, errors.Wrapf(err, "price of %s", label)
		}
		if wei.Sign() < 0 {
			return nil, fmt.Errorf("price of %s is negative", label)
		}
		prices[label] = wei
	}
	return prices, nil
}

// parseFunds parses address=ether pairs into starting balances in wei.
func parseFunds(pairs []string) (map[common.Address]*big.Int, error) {
	funds := make(map[common.Address]*big.Int, len(pairs))
	for _, pair := range pairs {
		addr, ether, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("fund %q is not address=ether", pair)
		}
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid address %q", addr)
		}
		wei, err := renewal.EtherToWei(ether)
		if err != nil {
			return nil, errors.Wrapf(err, "fund of %s", addr)
		}
		if wei.Sign() < 0 {
			return nil, fmt.Errorf("fund of %s is negative", addr)
		}
		funds[common.HexToAddress(addr)] = wei
	}
	return funds, nil
}

// fixedPricing prices every name at its yearly base fee without premium.
func fixedPricing(prices map[string]*big.Int) upstream.StaticPricing {
	pricing := make(upstream.StaticPricing, len(prices))
	for label, price := range prices {
		pricing[label] = registrar.IPriceOraclePrice{Base: price, Premium: new(big.Int)}
	}
	return pricing
}

func printReceipt(cCtx *cli.Context, receipt *renewal.Receipt) {
	w := cCtx.App.Writer
	fmt.Fprintf(w, "receipt   %s\n", receipt.ID)
	fmt.Fprintf(w, "tx        %s (block %d)\n", receipt.TxHash.Hex(), receipt.BlockNumber)
	fmt.Fprintf(w, "from      %s\n", receipt.From.Hex())
	fmt.Fprintf(w, "variant   %s\n", receipt.Variant)
	fmt.Fprintf(w, "value     %s ETH\n", renewal.WeiToEther(receipt.Value))
	fmt.Fprintf(w, "spent     %s ETH\n", renewal.WeiToEther(receipt.Spent))
	fmt.Fprintf(w, "refunded  %s ETH\n", renewal.WeiToEther(receipt.Refunded))
	if receipt.Swept != nil && receipt.Swept.Sign() > 0 {
		fmt.Fprintf(w, "swept     %s ETH\n", renewal.WeiToEther(receipt.Swept))
	}
	for _, r := range receipt.Renewed {
		fmt.Fprintf(w, "renewed   %s.eth for %s ETH, expires %s\n", r.Label, renewal.WeiToEther(r.Cost), time.Unix(r.Expires.Int64(), 0).UTC().Format(time.RFC3339))
	}
	for _, r := range receipt.Referrals {
		fmt.Fprintf(w, "referral  %s.eth cost %s ETH referrer %s\n", r.Label, renewal.WeiToEther(r.Cost), r.Referrer.Hex())
	}
}
