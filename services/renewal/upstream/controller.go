// Package upstream hosts ledger contracts that stand in for the ENS
// registrar controller, a referral-aware controller and the reverse
// registrar. Prices come from a static table.
package upstream

import (
	"context"
	"errors"
	"math"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/ledger"
)

// PricingPeriod is the duration a StaticPricing base fee is quoted for.
const PricingPeriod = 365 * 24 * 60 * 60

var (
	ErrUnknownName         = errors.New("name is not registered")
	ErrInsufficientValue   = errors.New("insufficient value")
	ErrNameNotRenewable    = errors.New("name not renewable")
	ErrExpiryOverflow      = errors.New("expiry overflow")
	ErrPlainTransfer       = errors.New("plain transfers are not accepted")
	ErrMismatchedArguments = errors.New("names and durations differ in length")
)

var (
	controllerABI abi.ABI
	referralABI   abi.ABI
	reverseABI    abi.ABI
)

func init() {
	controllerABI = mustParseABI(registrar.ETHRegistrarControllerMetaData)
	referralABI = mustParseABI(registrar.ReferralControllerMetaData)
	reverseABI = mustParseABI(registrar.ReverseRegistrarMetaData)
}

func mustParseABI(meta *bind.MetaData) abi.ABI {
	parsed, err := meta.GetAbi()
	if err != nil {
		panic(err)
	}
	return *parsed
}

// StaticPricing maps a label to its price for one PricingPeriod. The base
// fee scales linearly with the requested duration, the premium does not.
type StaticPricing map[string]registrar.IPriceOraclePrice

// Controller is a ledger-hosted ETHRegistrarController. Registrations are
// kept in the controller's storage, keyed by labelhash.
type Controller struct {
	ledger  *ledger.Ledger
	address common.Address

	mu      sync.RWMutex
	pricing StaticPricing
}

// NewController installs a controller at address.
func NewController(l *ledger.Ledger, address common.Address, pricing StaticPricing) (*Controller, error) {
	c := &Controller{
		ledger:  l,
		address: address,
		pricing: make(StaticPricing, len(pricing)),
	}
	for label, price := range pricing {
		c.pricing[label] = copyPrice(price)
	}
	if err := l.Install(address, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) Address() common.Address {
	return c.address
}

// SetPrice replaces the price of label.
func (c *Controller) SetPrice(label string, price registrar.IPriceOraclePrice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pricing[label] = copyPrice(price)
}

// Register records label as registered until expires.
func (c *Controller) Register(label string, expires uint64) {
	c.ledger.SetStorage(c.address, crypto.Keccak256Hash([]byte(label)), common.BigToHash(new(big.Int).SetUint64(expires)))
}

// Expiry returns the committed expiry of label, zero when unregistered.
func (c *Controller) Expiry(label string) uint64 {
	return c.ledger.StorageAt(c.address, crypto.Keccak256Hash([]byte(label))).Big().Uint64()
}

func (c *Controller) RentPrice(ctx context.Context, label string, duration *big.Int) (registrar.IPriceOraclePrice, error) {
	return c.rentPrice(label, duration)
}

func (c *Controller) rentPrice(label string, duration *big.Int) (registrar.IPriceOraclePrice, error) {
	if duration == nil || duration.Sign() <= 0 {
		return registrar.IPriceOraclePrice{}, ErrNameNotRenewable
	}
	c.mu.RLock()
	price, ok := c.pricing[label]
	c.mu.RUnlock()
	if !ok {
		return registrar.IPriceOraclePrice{}, ErrUnknownName
	}

	base := new(big.Int).Mul(price.Base, duration)
	base.Quo(base, big.NewInt(PricingPeriod))
	return registrar.IPriceOraclePrice{
		Base:    base,
		Premium: new(big.Int).Set(price.Premium),
	}, nil
}

// Renew extends the registration of label by duration. The attached value
// must cover the current price; any excess is returned to the caller.
func (c *Controller) Renew(env *ledger.Env, label string, duration *big.Int) error {
	if duration == nil || duration.Sign() <= 0 {
		return ErrNameNotRenewable
	}
	price, err := c.rentPrice(label, duration)
	if err != nil {
		return err
	}

	labelHash := crypto.Keccak256Hash([]byte(label))
	expiry := env.GetState(labelHash).Big()
	if expiry.Sign() == 0 {
		return ErrUnknownName
	}

	cost := new(big.Int).Add(price.Base, price.Premium)
	if env.Value().Cmp(cost) < 0 {
		return ErrInsufficientValue
	}

	expires := new(big.Int).Add(expiry, duration)
	if expires.Cmp(new(big.Int).SetUint64(math.MaxUint64)) > 0 {
		return ErrExpiryOverflow
	}
	env.SetState(labelHash, common.BigToHash(expires))

	event := controllerABI.Events["NameRenewed"]
	data, err := event.Inputs.NonIndexed().Pack(label, cost, expires)
	if err != nil {
		return err
	}
	env.Emit([]common.Hash{event.ID, labelHash}, data)

	if excess := new(big.Int).Sub(env.Value(), cost); excess.Sign() > 0 {
		return env.Transfer(env.Caller(), excess)
	}
	return nil
}

func (c *Controller) Receive(env *ledger.Env) error {
	return ErrPlainTransfer
}

func copyPrice(p registrar.IPriceOraclePrice) registrar.IPriceOraclePrice {
	price := registrar.IPriceOraclePrice{Base: new(big.Int), Premium: new(big.Int)}
	if p.Base != nil {
		price.Base.Set(p.Base)
	}
	if p.Premium != nil {
		price.Premium.Set(p.Premium)
	}
	return price
}
