package renewal

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/grailsmarket/ens-referrals/ledger"
)

var (
	lockSlot = crypto.Keccak256Hash([]byte("ens-referrals.bulk-renewal.lock"))
	lockHeld = common.BigToHash(big.NewInt(1))
)

// Config is the immutable configuration of a BulkRenewal deployment.
type Config struct {
	// Controller prices every renewal. The inference variant also renews
	// through it.
	Controller Controller
	// ReferralController renews names for the pass-through variant.
	ReferralController ReferralController
	// ReverseRegistrar, when set, is asked to hand the reverse record of the
	// deployment to the deployer.
	ReverseRegistrar ReverseRegistrar
	Referrer         [32]byte
	Variant          Variant
}

func (c Config) validate() error {
	if c.Controller == nil {
		return ErrInvalidConfig.WithDetails("controller is required")
	}
	switch c.Variant {
	case VariantPassthrough:
		if c.ReferralController == nil {
			return ErrInvalidConfig.WithDetails("passthrough variant requires a referral controller")
		}
	case VariantInference:
	default:
		return ErrInvalidConfig.WithDetails(fmt.Sprintf("unknown variant %q", c.Variant))
	}
	return nil
}

// BulkRenewal renews names over the upstream controller on behalf of its
// caller, attributes every renewal to the configured referrer and returns
// its whole balance to the caller afterwards.
type BulkRenewal struct {
	address    common.Address
	variant    Variant
	referrer   [32]byte
	controller Controller
	renewer    Renewer
}

// Deploy creates a BulkRenewal owned by deployer on the ledger. Construction
// claims the reverse record of the new contract for the deployer when a
// reverse registrar is configured.
func Deploy(ctx context.Context, l *ledger.Ledger, deployer common.Address, config Config) (*BulkRenewal, *ledger.Receipt, error) {
	if err := config.validate(); err != nil {
		return nil, nil, err
	}

	var renewer Renewer
	if config.Variant == VariantPassthrough {
		renewer = newReferralRenewer(config.ReferralController, config.Referrer)
	} else {
		renewer = newInferenceRenewer(config.Controller, config.Referrer)
	}

	var contract *BulkRenewal
	_, receipt, err := l.Deploy(ctx, deployer, func(env *ledger.Env) (ledger.Contract, error) {
		contract = &BulkRenewal{
			address:    env.Address(),
			variant:    config.Variant,
			referrer:   config.Referrer,
			controller: config.Controller,
			renewer:    renewer,
		}
		if config.ReverseRegistrar == nil {
			return contract, nil
		}
		err := env.Call(config.ReverseRegistrar.Address(), nil, func(callee *ledger.Env) error {
			_, err := config.ReverseRegistrar.Claim(callee, deployer)
			return err
		})
		if err != nil {
			return nil, err
		}
		return contract, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return contract, receipt, nil
}

func (b *BulkRenewal) Address() common.Address {
	return b.address
}

func (b *BulkRenewal) Variant() Variant {
	return b.variant
}

func (b *BulkRenewal) Referrer() [32]byte {
	return b.referrer
}

// Quote returns the current total price of renewing every label for its
// duration. It is read-only.
func (b *BulkRenewal) Quote(ctx context.Context, labels []string, durations []*big.Int) (*big.Int, error) {
	return Quote(ctx, b.controller, labels, durations)
}

// Renew renews a single label with the attached value and refunds the
// contract balance to the caller. env must be the contract's own frame.
func (b *BulkRenewal) Renew(env *ledger.Env, label string, duration *big.Int) error {
	if err := validateDuration(label, duration); err != nil {
		return err
	}
	return b.nonReentrant(env, func() error {
		if _, err := b.renew(env, label, duration); err != nil {
			return err
		}
		return b.refund(env)
	})
}

// RenewBatch renews every label in order, re-pricing each one at execution
// time, and refunds the contract balance to the caller. Total sufficiency of
// the attached value is not checked upfront: the first item that cannot be
// paid fails, which reverts the whole invocation. Malformed input is rejected
// before any external call.
func (b *BulkRenewal) RenewBatch(env *ledger.Env, labels []string, durations []*big.Int) error {
	if err := validateItems(labels, durations); err != nil {
		return err
	}
	return b.nonReentrant(env, func() error {
		for i, label := range labels {
			if _, err := b.renew(env, label, durations[i]); err != nil {
				return err
			}
		}
		return b.refund(env)
	})
}

func (b *BulkRenewal) renew(env *ledger.Env, label string, duration *big.Int) (*big.Int, error) {
	price, err := b.controller.RentPrice(env.Context(), label, duration)
	if err != nil {
		return nil, ErrUpstreamQuoteFailure.WithDetails(label).Wrap(err)
	}
	return b.renewer.Renew(env, label, duration, Cost(price))
}

// refund sends the whole contract balance to the caller, pre-existing
// balance included.
func (b *BulkRenewal) refund(env *ledger.Env) error {
	balance := env.SelfBalance()
	if balance.Sign() == 0 {
		return nil
	}
	if err := env.Transfer(env.Caller(), balance); err != nil {
		return ErrTransferFailed.WithDetails(env.Caller().Hex()).Wrap(err)
	}
	return nil
}

// nonReentrant rejects calls into the renewal operations while one is
// already running on this contract. The lock lives in contract storage, so a
// failed invocation releases it together with everything else.
func (b *BulkRenewal) nonReentrant(env *ledger.Env, fn func() error) error {
	if env.GetState(lockSlot) == lockHeld {
		return ErrReentrantCall
	}
	env.SetState(lockSlot, lockHeld)
	if err := fn(); err != nil {
		return err
	}
	env.SetState(lockSlot, common.Hash{})
	return nil
}

// Receive accepts plain transfers, including upstream refunds.
func (b *BulkRenewal) Receive(env *ledger.Env) error {
	return nil
}
