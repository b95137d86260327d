package renewal

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/grailsmarket/ens-referrals/services/renewal/migrations"
	"github.com/grailsmarket/ens-referrals/signal"
	"github.com/grailsmarket/ens-referrals/sqlite"
)

var testTime = time.Unix(1_760_000_000, 0)

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

type APISuite struct {
	suite.Suite

	ctx      context.Context
	upstream *upstreamFixture
	contract *BulkRenewal
	db       *sql.DB
	api      *API
	signals  []signal.Envelope
}

func (s *APISuite) SetupTest() {
	s.ctx = context.Background()
	s.upstream = newUpstreamFixture(s.T())

	var err error
	s.contract, _, err = Deploy(s.ctx, s.upstream.ledger, deployer, Config{
		Controller:       s.upstream.controller,
		ReverseRegistrar: s.upstream.reverse,
		Referrer:         referrer,
		Variant:          VariantInference,
	})
	s.Require().NoError(err)

	s.db, err = sqlite.OpenDB(sqlite.InMemoryPath, "renewal-tests")
	s.Require().NoError(err)
	s.Require().NoError(migrations.Migrate(s.db))

	s.api, err = NewAPI(s.upstream.ledger, s.contract, NewDatabase(s.db), func() time.Time { return testTime }, nil)
	s.Require().NoError(err)

	s.signals = nil
	signal.SetDefaultNodeNotificationHandler(func(jsonEvent string) {
		var envelope signal.Envelope
		s.Require().NoError(json.Unmarshal([]byte(jsonEvent), &envelope))
		s.signals = append(s.signals, envelope)
	})
}

func (s *APISuite) TearDownTest() {
	signal.ResetDefaultNodeNotificationHandler()
	s.Require().NoError(s.db.Close())
}

func (s *APISuite) requireWei(expected, actual *big.Int) {
	s.Require().NotNil(actual)
	s.Require().Zero(expected.Cmp(actual), "expected %s, got %s", expected, actual)
}

func (s *APISuite) TestQuoteNormalisesNames() {
	total, err := s.api.Quote(s.ctx, []string{"Alice.eth", "CAROL"}, years(2))
	s.Require().NoError(err)
	s.requireWei(finneys(35), total)

	_, err = s.api.Quote(s.ctx, []string{"sub.alice.eth"}, years(1))
	s.Require().ErrorIs(err, ErrInvalidLabel)
}

func (s *APISuite) TestRenewBatchReceipt() {
	s.upstream.ledger.Credit(s.contract.Address(), finneys(50))
	successes := testutil.ToFloat64(invocationCounter.WithLabelValues(string(VariantInference), "success"))

	receipt, err := s.api.RenewBatch(s.ctx, caller, finneys(30), []string{"Alice.eth", "bob"}, years(2))
	s.Require().NoError(err)

	s.Require().NotEmpty(receipt.ID)
	s.Require().Equal(caller, receipt.From)
	s.Require().Equal(s.contract.Address(), receipt.Contract)
	s.Require().Equal([]string{"alice", "bob"}, receipt.Labels)
	s.requireWei(finneys(30), receipt.Value)
	s.requireWei(finneys(20), receipt.Spent)
	s.requireWei(finneys(60), receipt.Refunded)
	s.requireWei(finneys(50), receipt.Swept)
	s.Require().Len(receipt.Referrals, 2)
	s.Require().Len(receipt.Renewed, 2)
	s.Require().Equal(testTime.Unix(), receipt.Timestamp)

	s.requireWei(finneys(1030), s.upstream.ledger.BalanceOf(caller))
	s.Require().Equal(successes+1, testutil.ToFloat64(invocationCounter.WithLabelValues(string(VariantInference), "success")))

	s.Require().Len(s.signals, 1)
	s.Require().Equal(string(signal.RenewalCompleted), s.signals[0].Type)

	stored, err := s.api.Receipts(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.Require().Equal(receipt.ID, stored[0].ID)
	s.Require().Equal(receipt.TxHash, stored[0].TxHash)
	s.Require().Equal(receipt.Labels, stored[0].Labels)
	s.Require().Len(stored[0].Durations, 2)
	s.requireWei(year, stored[0].Durations[0])
	s.requireWei(receipt.Spent, stored[0].Spent)
	s.requireWei(receipt.Refunded, stored[0].Refunded)
	s.requireWei(receipt.Swept, stored[0].Swept)
	s.Require().Len(stored[0].Referrals, 2)
	s.Require().Equal("alice", stored[0].Referrals[0].Label)
	s.requireWei(finneys(10), stored[0].Referrals[0].Cost)
	s.requireWei(year, stored[0].Referrals[0].Duration)
	s.Require().Len(stored[0].Renewed, 2)
	s.Require().Equal("bob", stored[0].Renewed[1].Label)
}

func (s *APISuite) TestRenewBatchInvalidDurationChangesNothing() {
	_, err := s.api.RenewBatch(s.ctx, caller, finneys(30), []string{"alice", "bob"}, []*big.Int{year, nil})
	s.Require().ErrorIs(err, ErrInvalidDuration)

	s.requireWei(finneys(1000), s.upstream.ledger.BalanceOf(caller))
	s.Require().Equal(0, s.upstream.ledger.BalanceOf(s.contract.Address()).Sign())
	s.Require().Equal(0, s.upstream.ledger.BalanceOf(controllerAddr).Sign())
	s.Require().Equal(uint64(initialExpiry), s.upstream.controller.Expiry("alice"))

	s.Require().Len(s.signals, 1)
	s.Require().Equal(string(signal.RenewalFailed), s.signals[0].Type)
}

func (s *APISuite) TestRenewSingleReceipt() {
	receipt, err := s.api.Renew(s.ctx, caller, finneys(15), "alice", year)
	s.Require().NoError(err)
	s.requireWei(finneys(10), receipt.Spent)
	s.requireWei(finneys(5), receipt.Refunded)
	s.Require().Equal(0, receipt.Swept.Sign())
	s.Require().Len(receipt.Referrals, 1)
}

func (s *APISuite) TestFailedRenewalIsReported() {
	failures := testutil.ToFloat64(invocationCounter.WithLabelValues(string(VariantInference), "failure"))

	_, err := s.api.RenewBatch(s.ctx, caller, finneys(15), []string{"alice", "bob"}, years(2))
	s.Require().ErrorIs(err, ErrUpstreamRenewalFailure)

	s.Require().Equal(failures+1, testutil.ToFloat64(invocationCounter.WithLabelValues(string(VariantInference), "failure")))
	s.Require().Len(s.signals, 1)
	s.Require().Equal(string(signal.RenewalFailed), s.signals[0].Type)
	event, ok := s.signals[0].Event.(map[string]interface{})
	s.Require().True(ok)
	s.Require().Equal(string(ErrUpstreamRenewalFailure.Code), event["errorCode"])

	stored, err := s.api.Receipts(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Empty(stored)
	s.requireWei(finneys(1000), s.upstream.ledger.BalanceOf(caller))
}

func (s *APISuite) TestInvalidNameIsRejectedBeforeExecution() {
	block := s.upstream.ledger.BlockNumber()
	_, err := s.api.RenewBatch(s.ctx, caller, finneys(10), []string{"a.b"}, years(1))
	s.Require().ErrorIs(err, ErrInvalidLabel)
	s.Require().Equal(block, s.upstream.ledger.BlockNumber())
	s.Require().Empty(s.signals)
}

func (s *APISuite) TestReceiptsNewestFirst() {
	for _, label := range []string{"alice", "bob", "carol"} {
		_, err := s.api.Renew(s.ctx, caller, finneys(30), label, year)
		s.Require().NoError(err)
	}

	stored, err := s.api.Receipts(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(stored, 2)
	s.Require().Equal([]string{"carol"}, stored[0].Labels)
	s.Require().Equal([]string{"bob"}, stored[1].Labels)

	total, err := NewDatabase(s.db).TotalReferred(referrer)
	s.Require().NoError(err)
	s.requireWei(finneys(45), total)
}

func (s *APISuite) TestServiceOverRPC() {
	service := NewService(s.api)
	s.Require().NoError(service.Start())
	defer func() { s.Require().NoError(service.Stop()) }()

	server := gethrpc.NewServer()
	defer server.Stop()
	for _, api := range service.APIs() {
		s.Require().NoError(server.RegisterName(api.Namespace, api.Service))
	}

	client := gethrpc.DialInProc(server)
	defer client.Close()

	var total *big.Int
	s.Require().NoError(client.CallContext(s.ctx, &total, "renewal_quote", []string{"alice", "bob"}, years(2)))
	s.requireWei(finneys(20), total)
}
