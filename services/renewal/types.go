package renewal

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/ledger"
	"github.com/grailsmarket/ens-referrals/params"
)

//go:generate mockgen -package=mock -source=types.go -destination=mock/types.go

// Price is the quote of the upstream pricing oracle for one renewal.
type Price = registrar.IPriceOraclePrice

// Cost is the amount owed for a quoted renewal.
func Cost(p Price) *big.Int {
	cost := new(big.Int)
	if p.Base != nil {
		cost.Add(cost, p.Base)
	}
	if p.Premium != nil {
		cost.Add(cost, p.Premium)
	}
	return cost
}

// Variant selects how a deployment records referrals.
type Variant string

const (
	VariantPassthrough Variant = params.VariantPassthrough
	VariantInference   Variant = params.VariantInference
)

// PriceOracle quotes renewals. Quotes are read-only.
type PriceOracle interface {
	RentPrice(ctx context.Context, label string, duration *big.Int) (Price, error)
}

// Controller is the upstream registrar controller: it prices renewals and
// renews names for the value attached to the call.
type Controller interface {
	PriceOracle
	Address() common.Address
	// Renew runs as the controller's frame of a nested call.
	Renew(env *ledger.Env, label string, duration *big.Int) error
}

// ReferralController is an upstream entry point that renews a name and
// records the referrer itself.
type ReferralController interface {
	Address() common.Address
	Renew(env *ledger.Env, label string, duration *big.Int, referrer [32]byte) error
}

// ReverseRegistrar records reverse resolution ownership of the calling account.
type ReverseRegistrar interface {
	Address() common.Address
	Claim(env *ledger.Env, owner common.Address) (common.Hash, error)
}
