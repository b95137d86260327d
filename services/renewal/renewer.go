package renewal

import (
	"math/big"

	"github.com/grailsmarket/ens-referrals/ledger"
)

// Renewer renews one name on behalf of the executing contract, forwarding
// exactly cost, and reports what the renewal actually cost.
type Renewer interface {
	Renew(env *ledger.Env, label string, duration *big.Int, cost *big.Int) (*big.Int, error)
}

// referralRenewer hands the referrer to an upstream entry point that records
// it natively.
type referralRenewer struct {
	controller ReferralController
	referrer   [32]byte
}

func newReferralRenewer(controller ReferralController, referrer [32]byte) *referralRenewer {
	return &referralRenewer{controller: controller, referrer: referrer}
}

func (r *referralRenewer) Renew(env *ledger.Env, label string, duration *big.Int, cost *big.Int) (*big.Int, error) {
	err := env.Call(r.controller.Address(), cost, func(callee *ledger.Env) error {
		return r.controller.Renew(callee, label, duration, r.referrer)
	})
	if err != nil {
		return nil, ErrUpstreamRenewalFailure.WithDetails(label).Wrap(err)
	}
	return new(big.Int).Set(cost), nil
}

// inferenceRenewer renews through the plain controller, measures the spend as
// the drop of the contract's own balance across the call and records the
// referral in a RenewalReferred event.
//
// The measurement holds only because invocations are serialized: nothing but
// the nested call can move value in or out of the contract while it runs.
type inferenceRenewer struct {
	controller Controller
	referrer   [32]byte
}

func newInferenceRenewer(controller Controller, referrer [32]byte) *inferenceRenewer {
	return &inferenceRenewer{controller: controller, referrer: referrer}
}

func (r *inferenceRenewer) Renew(env *ledger.Env, label string, duration *big.Int, cost *big.Int) (*big.Int, error) {
	before := env.SelfBalance()
	err := env.Call(r.controller.Address(), cost, func(callee *ledger.Env) error {
		return r.controller.Renew(callee, label, duration)
	})
	if err != nil {
		return nil, ErrUpstreamRenewalFailure.WithDetails(label).Wrap(err)
	}
	spent := new(big.Int).Sub(before, env.SelfBalance())

	if err := emitRenewalReferred(env, label, spent, duration, r.referrer); err != nil {
		return nil, err
	}
	return spent, nil
}
