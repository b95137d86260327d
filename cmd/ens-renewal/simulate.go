package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/grailsmarket/ens-referrals/ledger"
	"github.com/grailsmarket/ens-referrals/logutils"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/services/renewal"
	"github.com/grailsmarket/ens-referrals/services/renewal/upstream"
)

var (
	simulatedReferralController = common.HexToAddress("0x00000000000000000000000000000000000e5c02")
	reverseRegistrarAddress     = common.HexToAddress("0xa58E81fe9b61B5c3fE2AFD33CF304c454AbFc7Cb")
)

// simulation is a ledger with the upstream ENS contracts installed at the
// configured addresses.
type simulation struct {
	ledger     *ledger.Ledger
	controller *upstream.Controller
	referral   *upstream.ReferralController
	reverse    *upstream.ReverseRegistrar
}

func newSimulation(config *params.Config, pricing upstream.StaticPricing) (*simulation, error) {
	controllerAddr, err := config.Controller()
	if err != nil {
		return nil, err
	}
	referralAddr := simulatedReferralController
	if config.ReferralControllerAddress != "" {
		referralAddr = config.ReferralController()
	}

	l := ledger.New()
	controller, err := upstream.NewController(l, controllerAddr, pricing)
	if err != nil {
		return nil, err
	}
	referral, err := upstream.NewReferralController(l, referralAddr, controller)
	if err != nil {
		return nil, err
	}
	reverse, err := upstream.NewReverseRegistrar(l, reverseRegistrarAddress)
	if err != nil {
		return nil, err
	}
	return &simulation{
		ledger:     l,
		controller: controller,
		referral:   referral,
		reverse:    reverse,
	}, nil
}

func (s *simulation) deploy(ctx context.Context, config *params.Config, deployer common.Address) (*renewal.BulkRenewal, error) {
	referrer, err := config.ReferrerID()
	if err != nil {
		return nil, err
	}
	contract, _, err := renewal.Deploy(ctx, s.ledger, deployer, renewal.Config{
		Controller:         s.controller,
		ReferralController: s.referral,
		ReverseRegistrar:   s.reverse,
		Referrer:           referrer,
		Variant:            renewal.Variant(config.Variant),
	})
	return contract, err
}

// simulationPricing builds the price table from the price flags, quoting the
// remaining labels from chain for one pricing period.
func simulationPricing(ctx context.Context, config *params.Config, labels []string, flags []string) (upstream.StaticPricing, error) {
	prices, err := parsePrices(flags)
	if err != nil {
		return nil, err
	}

	pricing := fixedPricing(prices)
	var missing []string
	for _, label := range labels {
		if _, ok := pricing[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) == 0 {
		return pricing, nil
	}
	if len(config.Providers) == 0 {
		return nil, fmt.Errorf("no price given for %v and no providers configured", missing)
	}

	oracle, closeOracle, err := chainOracle(config)
	if err != nil {
		return nil, err
	}
	defer closeOracle()

	period := big.NewInt(upstream.PricingPeriod)
	for _, label := range missing {
		price, err := oracle.RentPrice(ctx, label, period)
		if err != nil {
			return nil, renewal.ErrUpstreamQuoteFailure.WithDetails(label).Wrap(err)
		}
		pricing[label] = price
	}
	return pricing, nil
}

func simulate(cCtx *cli.Context) error {
	ctx := cCtx.Context
	config := configFrom(cCtx)
	logger := logutils.ZapLogger()

	labels, err := renewal.NormaliseLabels(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	duration, err := durationSeconds(cCtx)
	if err != nil {
		return err
	}
	value, err := renewal.EtherToWei(cCtx.String(ValueFlag))
	if err != nil {
		return err
	}
	preexisting, err := renewal.EtherToWei(cCtx.String(PreexistingFlag))
	if err != nil {
		return err
	}
	if value.Sign() < 0 || preexisting.Sign() < 0 {
		return fmt.Errorf("amounts must not be negative")
	}
	if !common.IsHexAddress(cCtx.String(FromFlag)) {
		return fmt.Errorf("invalid address %q", cCtx.String(FromFlag))
	}
	from := common.HexToAddress(cCtx.String(FromFlag))

	pricing, err := simulationPricing(ctx, config, labels, cCtx.StringSlice(PriceFlag))
	if err != nil {
		return err
	}
	sim, err := newSimulation(config, pricing)
	if err != nil {
		return err
	}
	for _, label := range labels {
		sim.controller.Register(label, uint64(time.Now().Unix()))
	}
	sim.ledger.Credit(from, value)

	contract, err := sim.deploy(ctx, config, from)
	if err != nil {
		return err
	}
	if preexisting.Sign() > 0 {
		sim.ledger.Credit(contract.Address(), preexisting)
	}
	logger.Debug("simulation ready",
		zap.Stringer("contract", contract.Address()),
		zap.String("variant", string(contract.Variant())),
	)

	db, err := openReceiptsDB(config)
	if err != nil {
		return err
	}
	var database *renewal.Database
	if db != nil {
		defer db.Close()
		database = renewal.NewDatabase(db)
	}

	api, err := renewal.NewAPI(sim.ledger, contract, database, time.Now, logger)
	if err != nil {
		return err
	}
	receipt, err := api.RenewBatch(ctx, from, value, labels, repeat(duration, len(labels)))
	if err != nil {
		return err
	}
	printReceipt(cCtx, receipt)
	return nil
}
