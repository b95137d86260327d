package upstream

import (
	"context"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/ledger"
)

var (
	finney   = big.NewInt(1e15)
	year     = big.NewInt(PricingPeriod)
	caller   = common.HexToAddress("0x00000000000000000000000000000000000ca11e")
	referrer = [32]byte{1, 2, 3}

	controllerAddr = common.HexToAddress("0x0000000000000000000000000000000000000c01")
	referralAddr   = common.HexToAddress("0x0000000000000000000000000000000000000c02")
	reverseAddr    = common.HexToAddress("0x0000000000000000000000000000000000000c03")
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func finneys(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), finney)
}

func TestUpstreamSuite(t *testing.T) {
	suite.Run(t, new(UpstreamSuite))
}

type UpstreamSuite struct {
	suite.Suite

	ctx        context.Context
	ledger     *ledger.Ledger
	controller *Controller
	referral   *ReferralController
	reverse    *ReverseRegistrar
}

func (s *UpstreamSuite) SetupTest() {
	var err error
	s.ctx = context.Background()
	s.ledger = ledger.New()
	s.ledger.Credit(caller, finneys(1000))

	s.controller, err = NewController(s.ledger, controllerAddr, StaticPricing{
		"alice": {Base: finneys(10), Premium: new(big.Int)},
		"bob":   {Base: finneys(20), Premium: finneys(5)},
	})
	s.Require().NoError(err)
	s.controller.Register("alice", 1000)
	s.controller.Register("bob", 1000)

	s.referral, err = NewReferralController(s.ledger, referralAddr, s.controller)
	s.Require().NoError(err)

	s.reverse, err = NewReverseRegistrar(s.ledger, reverseAddr)
	s.Require().NoError(err)
}

func (s *UpstreamSuite) renew(label string, duration *big.Int, value *big.Int) (*ledger.Receipt, error) {
	return s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: controllerAddr, Value: value}, func(env *ledger.Env) error {
		return s.controller.Renew(env, label, duration)
	})
}

func (s *UpstreamSuite) TestRentPriceScalesBaseOnly() {
	price, err := s.controller.RentPrice(s.ctx, "bob", new(big.Int).Mul(year, big.NewInt(2)))
	s.Require().NoError(err)
	s.Require().Equal(finneys(40), price.Base)
	s.Require().Equal(finneys(5), price.Premium)

	price, err = s.controller.RentPrice(s.ctx, "alice", new(big.Int).Quo(year, big.NewInt(2)))
	s.Require().NoError(err)
	s.Require().Equal(finneys(5), price.Base)

	_, err = s.controller.RentPrice(s.ctx, "nobody", year)
	s.Require().ErrorIs(err, ErrUnknownName)

	_, err = s.controller.RentPrice(s.ctx, "alice", nil)
	s.Require().ErrorIs(err, ErrNameNotRenewable)
}

func (s *UpstreamSuite) TestSetPrice() {
	s.controller.SetPrice("alice", registrar.IPriceOraclePrice{Base: finneys(30)})
	price, err := s.controller.RentPrice(s.ctx, "alice", year)
	s.Require().NoError(err)
	s.Require().Equal(finneys(30), price.Base)
	s.Require().Equal(0, price.Premium.Sign())
}

func (s *UpstreamSuite) TestRenewExtendsExpiryAndRefundsExcess() {
	receipt, err := s.renew("alice", year, finneys(15))
	s.Require().NoError(err)
	s.Require().Equal(uint64(1000+PricingPeriod), s.controller.Expiry("alice"))
	s.Require().Equal(finneys(10), s.ledger.BalanceOf(controllerAddr))
	s.Require().Equal(finneys(990), s.ledger.BalanceOf(caller))

	s.Require().Len(receipt.Logs, 1)
	filterer, err := registrar.NewETHRegistrarControllerFilterer(controllerAddr, nil)
	s.Require().NoError(err)
	event, err := filterer.ParseNameRenewed(*receipt.Logs[0])
	s.Require().NoError(err)
	s.Require().Equal("alice", event.Name)
	s.Require().Equal(finneys(10), event.Cost)
	s.Require().Equal(big.NewInt(1000+PricingPeriod), event.Expires)
}

func (s *UpstreamSuite) TestRenewFailures() {
	_, err := s.renew("alice", year, finneys(9))
	s.Require().ErrorIs(err, ErrInsufficientValue)

	_, err = s.renew("nobody", year, finneys(10))
	s.Require().ErrorIs(err, ErrUnknownName)

	s.controller.SetPrice("carol", registrar.IPriceOraclePrice{Base: finneys(1)})
	_, err = s.renew("carol", year, finneys(10))
	s.Require().ErrorIs(err, ErrUnknownName)

	_, err = s.renew("alice", big.NewInt(0), finneys(10))
	s.Require().ErrorIs(err, ErrNameNotRenewable)

	s.controller.Register("alice", math.MaxUint64-10)
	_, err = s.renew("alice", year, finneys(10))
	s.Require().ErrorIs(err, ErrExpiryOverflow)

	s.Require().Equal(uint64(math.MaxUint64-10), s.controller.Expiry("alice"))
	s.Require().Equal(finneys(1000), s.ledger.BalanceOf(caller))
	s.Require().Equal(uint64(0), s.ledger.BlockNumber())
}

func (s *UpstreamSuite) TestControllerRejectsPlainTransfers() {
	_, err := s.ledger.Transfer(s.ctx, caller, controllerAddr, finneys(1))
	s.Require().ErrorIs(err, ErrPlainTransfer)
}

func (s *UpstreamSuite) TestReferralRenew() {
	receipt, err := s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: referralAddr, Value: finneys(30)}, func(env *ledger.Env) error {
		return s.referral.Renew(env, "bob", year, referrer)
	})
	s.Require().NoError(err)
	s.Require().Equal(finneys(25), s.ledger.BalanceOf(controllerAddr))
	s.Require().Equal(0, s.ledger.BalanceOf(referralAddr).Sign())
	s.Require().Equal(finneys(975), s.ledger.BalanceOf(caller))

	s.Require().Len(receipt.Logs, 2)
	s.Require().Equal(controllerAddr, receipt.Logs[0].Address)
	s.Require().Equal(referralAddr, receipt.Logs[1].Address)

	filterer, err := registrar.NewReferralControllerFilterer(referralAddr, nil)
	s.Require().NoError(err)
	event, err := filterer.ParseReferralRenewed(*receipt.Logs[1])
	s.Require().NoError(err)
	s.Require().Equal("bob", event.Label)
	s.Require().Equal(finneys(25), event.Cost)
	s.Require().Equal(referrer, event.Referrer)
}

func (s *UpstreamSuite) TestReferralRenewAll() {
	labels := []string{"alice", "bob"}
	durations := []*big.Int{year, year}
	receipt, err := s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: referralAddr, Value: finneys(40)}, func(env *ledger.Env) error {
		return s.referral.RenewAll(env, labels, durations, referrer)
	})
	s.Require().NoError(err)
	s.Require().Len(receipt.Logs, 4)
	s.Require().Equal(finneys(965), s.ledger.BalanceOf(caller))

	_, err = s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: referralAddr, Value: finneys(34)}, func(env *ledger.Env) error {
		return s.referral.RenewAll(env, labels, durations, referrer)
	})
	s.Require().ErrorIs(err, ErrInsufficientValue)

	_, err = s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: referralAddr}, func(env *ledger.Env) error {
		return s.referral.RenewAll(env, labels, durations[:1], referrer)
	})
	s.Require().ErrorIs(err, ErrMismatchedArguments)
}

func (s *UpstreamSuite) TestReverseClaim() {
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	var node common.Hash
	receipt, err := s.ledger.Execute(s.ctx, ledger.Message{From: caller, To: reverseAddr}, func(env *ledger.Env) error {
		var err error
		node, err = s.reverse.Claim(env, owner)
		return err
	})
	s.Require().NoError(err)

	expected, err := ReverseNode(caller)
	s.Require().NoError(err)
	s.Require().Equal(expected, node)

	got, err := s.reverse.Owner(caller)
	s.Require().NoError(err)
	s.Require().Equal(owner, got)

	filterer, err := registrar.NewReverseRegistrarFilterer(reverseAddr, nil)
	s.Require().NoError(err)
	s.Require().Len(receipt.Logs, 1)
	event, err := filterer.ParseReverseClaimed(*receipt.Logs[0])
	s.Require().NoError(err)
	s.Require().Equal(caller, event.Addr)
	s.Require().Equal([32]byte(node), event.Node)
}

func TestReverseNode(t *testing.T) {
	node, err := ReverseNode(common.Address{})
	require.NoError(t, err)
	require.NotEqual(t, common.Hash{}, node)

	other, err := ReverseNode(caller)
	require.NoError(t, err)
	require.NotEqual(t, node, other)
}
