package renewal

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/grailsmarket/ens-referrals/contracts/bulkrenewal"
	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/ledger"
)

const (
	renewalReferredEvent = "RenewalReferred"
	referralRenewedEvent = "ReferralRenewed"
	nameRenewedEvent     = "NameRenewed"
)

var (
	bulkRenewalABI abi.ABI
	referralABI    abi.ABI
	controllerABI  abi.ABI
)

func init() {
	bulkRenewalABI = mustParseABI(bulkrenewal.BulkRenewalMetaData)
	referralABI = mustParseABI(registrar.ReferralControllerMetaData)
	controllerABI = mustParseABI(registrar.ETHRegistrarControllerMetaData)
}

func mustParseABI(meta *bind.MetaData) abi.ABI {
	parsed, err := meta.GetAbi()
	if err != nil {
		panic(err)
	}
	return *parsed
}

// LabelHash is the keccak256 hash of the label bytes, as used for indexed
// label topics and registrar token IDs.
func LabelHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}

// RenewalReferredTopic is the first topic of RenewalReferred logs.
func RenewalReferredTopic() common.Hash {
	return bulkRenewalABI.Events[renewalReferredEvent].ID
}

func emitRenewalReferred(env *ledger.Env, label string, cost *big.Int, duration *big.Int, referrer [32]byte) error {
	event := bulkRenewalABI.Events[renewalReferredEvent]
	data, err := event.Inputs.NonIndexed().Pack(label, cost, duration, referrer)
	if err != nil {
		return err
	}
	env.Emit([]common.Hash{event.ID, LabelHash(label)}, data)
	return nil
}

// logDecoder turns the logs of a renewal invocation into referrals and
// upstream renewals. Logs of unknown events are skipped.
type logDecoder struct {
	bulkRenewal *bulkrenewal.BulkRenewalFilterer
	referral    *registrar.ReferralControllerFilterer
	controller  *registrar.ETHRegistrarControllerFilterer
}

func newLogDecoder() (*logDecoder, error) {
	bulkRenewal, err := bulkrenewal.NewBulkRenewalFilterer(common.Address{}, nil)
	if err != nil {
		return nil, err
	}
	referral, err := registrar.NewReferralControllerFilterer(common.Address{}, nil)
	if err != nil {
		return nil, err
	}
	controller, err := registrar.NewETHRegistrarControllerFilterer(common.Address{}, nil)
	if err != nil {
		return nil, err
	}
	return &logDecoder{
		bulkRenewal: bulkRenewal,
		referral:    referral,
		controller:  controller,
	}, nil
}

func (d *logDecoder) decode(logs []*types.Log) ([]Referral, []Renewed, error) {
	var (
		referrals []Referral
		renewed   []Renewed
	)
	for _, log := range logs {
		if len(log.Topics) == 0 {
			continue
		}
		switch log.Topics[0] {
		case bulkRenewalABI.Events[renewalReferredEvent].ID:
			event, err := d.bulkRenewal.ParseRenewalReferred(*log)
			if err != nil {
				return nil, nil, err
			}
			referrals = append(referrals, Referral{
				LogIndex:  log.Index,
				Label:     event.Label,
				LabelHash: event.LabelHash,
				Cost:      event.Cost,
				Duration:  event.Duration,
				Referrer:  event.Referrer,
			})
		case referralABI.Events[referralRenewedEvent].ID:
			event, err := d.referral.ParseReferralRenewed(*log)
			if err != nil {
				return nil, nil, err
			}
			referrals = append(referrals, Referral{
				LogIndex:  log.Index,
				Label:     event.Label,
				LabelHash: event.LabelHash,
				Cost:      event.Cost,
				Referrer:  event.Referrer,
			})
		case controllerABI.Events[nameRenewedEvent].ID:
			event, err := d.controller.ParseNameRenewed(*log)
			if err != nil {
				return nil, nil, err
			}
			renewed = append(renewed, Renewed{
				Label:   event.Name,
				Cost:    event.Cost,
				Expires: event.Expires,
			})
		}
	}
	return referrals, renewed, nil
}
