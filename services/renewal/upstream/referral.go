package upstream

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/ledger"
)

// ReferralController renews through a Controller and records the referrer
// of every renewal in a ReferralRenewed event.
type ReferralController struct {
	address    common.Address
	controller *Controller
}

func NewReferralController(l *ledger.Ledger, address common.Address, controller *Controller) (*ReferralController, error) {
	rc := &ReferralController{
		address:    address,
		controller: controller,
	}
	if err := l.Install(address, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

func (rc *ReferralController) Address() common.Address {
	return rc.address
}

func (rc *ReferralController) RentPrice(ctx context.Context, label string, duration *big.Int) (registrar.IPriceOraclePrice, error) {
	return rc.controller.RentPrice(ctx, label, duration)
}

// Renew renews label for the attached value and returns the excess to the
// caller.
func (rc *ReferralController) Renew(env *ledger.Env, label string, duration *big.Int, referrer [32]byte) error {
	cost, err := rc.renew(env, label, duration, referrer, env.Value())
	if err != nil {
		return err
	}
	return rc.refund(env, cost)
}

// RenewAll renews every name in order and returns what is left of the
// attached value to the caller.
func (rc *ReferralController) RenewAll(env *ledger.Env, labels []string, durations []*big.Int, referrer [32]byte) error {
	if len(labels) != len(durations) {
		return ErrMismatchedArguments
	}

	total := new(big.Int)
	for i, label := range labels {
		available := new(big.Int).Sub(env.Value(), total)
		cost, err := rc.renew(env, label, durations[i], referrer, available)
		if err != nil {
			return err
		}
		total.Add(total, cost)
	}
	return rc.refund(env, total)
}

func (rc *ReferralController) renew(env *ledger.Env, label string, duration *big.Int, referrer [32]byte, available *big.Int) (*big.Int, error) {
	price, err := rc.controller.RentPrice(env.Context(), label, duration)
	if err != nil {
		return nil, err
	}
	cost := new(big.Int).Add(price.Base, price.Premium)
	if available.Cmp(cost) < 0 {
		return nil, ErrInsufficientValue
	}

	err = env.Call(rc.controller.Address(), cost, func(callee *ledger.Env) error {
		return rc.controller.Renew(callee, label, duration)
	})
	if err != nil {
		return nil, err
	}

	event := referralABI.Events["ReferralRenewed"]
	data, err := event.Inputs.NonIndexed().Pack(label, cost)
	if err != nil {
		return nil, err
	}
	env.Emit([]common.Hash{event.ID, crypto.Keccak256Hash([]byte(label)), common.Hash(referrer)}, data)
	return cost, nil
}

func (rc *ReferralController) refund(env *ledger.Env, spent *big.Int) error {
	if excess := new(big.Int).Sub(env.Value(), spent); excess.Sign() > 0 {
		return env.Transfer(env.Caller(), excess)
	}
	return nil
}

// Receive accepts refunds from the controller.
func (rc *ReferralController) Receive(env *ledger.Env) error {
	return nil
}
