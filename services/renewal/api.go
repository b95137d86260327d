package renewal

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/common"

	ensErrors "github.com/grailsmarket/ens-referrals/errors"
	"github.com/grailsmarket/ens-referrals/ledger"
	"github.com/grailsmarket/ens-referrals/signal"
)

// DefaultReceiptsLimit bounds Receipts when no limit is given.
const DefaultReceiptsLimit = 100

// API runs renewal invocations of one BulkRenewal deployment.
type API struct {
	ledger   *ledger.Ledger
	contract *BulkRenewal
	db       *Database
	decoder  *logDecoder
	now      func() time.Time
	logger   *zap.Logger
}

// NewAPI returns an API for contract. db may be nil, receipts are then not
// stored.
func NewAPI(l *ledger.Ledger, contract *BulkRenewal, db *Database, now func() time.Time, logger *zap.Logger) (*API, error) {
	decoder, err := newLogDecoder()
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		ledger:   l,
		contract: contract,
		db:       db,
		decoder:  decoder,
		now:      now,
		logger:   logger.Named("renewal"),
	}, nil
}

// Quote returns the current total price of renewing names.
func (api *API) Quote(ctx context.Context, names []string, durations []*big.Int) (*big.Int, error) {
	labels, err := NormaliseLabels(names)
	if err != nil {
		return nil, err
	}
	return api.contract.Quote(ctx, labels, durations)
}

// Renew renews a single name for from, attaching value.
func (api *API) Renew(ctx context.Context, from common.Address, value *big.Int, name string, duration *big.Int) (*Receipt, error) {
	label, err := NormaliseLabel(name)
	if err != nil {
		return nil, err
	}
	return api.execute(ctx, from, value, []string{label}, []*big.Int{duration}, func(env *ledger.Env) error {
		return api.contract.Renew(env, label, duration)
	})
}

// RenewBatch renews names for from, attaching value.
func (api *API) RenewBatch(ctx context.Context, from common.Address, value *big.Int, names []string, durations []*big.Int) (*Receipt, error) {
	labels, err := NormaliseLabels(names)
	if err != nil {
		return nil, err
	}
	return api.execute(ctx, from, value, labels, durations, func(env *ledger.Env) error {
		return api.contract.RenewBatch(env, labels, durations)
	})
}

// Receipts returns stored receipts, newest first.
func (api *API) Receipts(ctx context.Context, limit int) ([]*Receipt, error) {
	if api.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultReceiptsLimit
	}
	return api.db.GetReceipts(limit)
}

func (api *API) execute(ctx context.Context, from common.Address, value *big.Int, labels []string, durations []*big.Int, fn func(env *ledger.Env) error) (*Receipt, error) {
	if value == nil {
		value = new(big.Int)
	}

	var start, refunded *big.Int
	msg := ledger.Message{From: from, To: api.contract.Address(), Value: value}
	txReceipt, err := api.ledger.Execute(ctx, msg, func(env *ledger.Env) error {
		start = env.SelfBalance()
		callerBefore := env.Balance(from)
		if err := fn(env); err != nil {
			return err
		}
		refunded = new(big.Int).Sub(env.Balance(from), callerBefore)
		return nil
	})
	if err != nil {
		api.fail(from, labels, err)
		return nil, err
	}

	referrals, renewed, err := api.decoder.decode(txReceipt.Logs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode renewal logs")
	}

	receipt := &Receipt{
		ID:          uuid.New().String(),
		TxHash:      txReceipt.TxHash,
		BlockNumber: txReceipt.BlockNumber,
		From:        from,
		Contract:    api.contract.Address(),
		Variant:     api.contract.Variant(),
		Labels:      labels,
		Durations:   durations,
		Value:       new(big.Int).Set(value),
		Spent:       new(big.Int).Sub(start, refunded),
		Refunded:    refunded,
		Swept:       new(big.Int).Sub(start, value),
		Referrals:   referrals,
		Renewed:     renewed,
		Timestamp:   api.now().Unix(),
	}

	observeSuccess(receipt)
	api.logger.Info("renewal committed",
		zap.String("id", receipt.ID),
		zap.Stringer("from", from),
		zap.Strings("labels", labels),
		zap.Stringer("spent", WeiToEther(receipt.Spent)),
		zap.Stringer("refunded", WeiToEther(receipt.Refunded)),
	)
	signal.SendRenewalEvent(signal.RenewalCompleted, receipt)

	if api.db != nil {
		if err := api.db.SaveReceipt(receipt); err != nil {
			return receipt, errors.Wrap(err, "failed to store renewal receipt")
		}
	}
	return receipt, nil
}

func (api *API) fail(from common.Address, labels []string, err error) {
	observeFailure(api.contract.Variant())
	api.logger.Warn("renewal reverted",
		zap.Stringer("from", from),
		zap.Strings("labels", labels),
		zap.Error(err),
	)

	event := signal.RenewalFailedEvent{
		From:   from.Hex(),
		Labels: labels,
		Error:  err.Error(),
	}
	var errResp *ensErrors.ErrorResponse
	if errors.As(err, &errResp) {
		event.ErrorCode = string(errResp.Code)
	}
	signal.SendRenewalEvent(signal.RenewalFailed, event)
}
