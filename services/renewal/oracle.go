package renewal

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
)

// Quote sums the current price of every (label, duration) pair, in input
// order. It fails on malformed input before asking the oracle anything and
// returns no partial total when any quote fails.
func Quote(ctx context.Context, oracle PriceOracle, labels []string, durations []*big.Int) (*big.Int, error) {
	if err := validateItems(labels, durations); err != nil {
		return nil, err
	}

	total := new(big.Int)
	for i, label := range labels {
		price, err := oracle.RentPrice(ctx, label, durations[i])
		if err != nil {
			return nil, ErrUpstreamQuoteFailure.WithDetails(label).Wrap(err)
		}
		total.Add(total, Cost(price))
	}
	return total, nil
}

// validateItems checks that labels and durations pair up and that every
// duration is a positive number of seconds.
func validateItems(labels []string, durations []*big.Int) error {
	if len(labels) != len(durations) {
		return ErrArityMismatch.WithDetails(len(labels), len(durations))
	}
	for i, duration := range durations {
		if err := validateDuration(labels[i], duration); err != nil {
			return err
		}
	}
	return nil
}

func validateDuration(label string, duration *big.Int) error {
	if duration == nil || duration.Sign() <= 0 {
		return ErrInvalidDuration.WithDetails(label)
	}
	return nil
}

// ChainPriceOracle quotes renewals with eth_call against a deployed
// ETHRegistrarController.
type ChainPriceOracle struct {
	caller *registrar.ETHRegistrarControllerCaller
}

func NewChainPriceOracle(caller *registrar.ETHRegistrarControllerCaller) *ChainPriceOracle {
	return &ChainPriceOracle{caller: caller}
}

func (o *ChainPriceOracle) RentPrice(ctx context.Context, label string, duration *big.Int) (Price, error) {
	callOpts := &bind.CallOpts{Context: ctx, Pending: false}
	return o.caller.RentPrice(callOpts, label, duration)
}
