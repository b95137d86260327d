package renewal

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Referral is one referral record emitted during an invocation, either by
// the contract itself (inference) or by the referral controller
// (pass-through). Duration is only known for the former.
type Referral struct {
	LogIndex  uint        `json:"logIndex"`
	Label     string      `json:"label"`
	LabelHash common.Hash `json:"labelHash"`
	Cost      *big.Int    `json:"cost"`
	Duration  *big.Int    `json:"duration,omitempty"`
	Referrer  common.Hash `json:"referrer"`
}

// Renewed is a renewal reported by the upstream controller.
type Renewed struct {
	Label   string   `json:"label"`
	Cost    *big.Int `json:"cost"`
	Expires *big.Int `json:"expires"`
}

// Receipt describes a committed renewal invocation.
type Receipt struct {
	ID          string         `json:"id"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
	From        common.Address `json:"from"`
	Contract    common.Address `json:"contract"`
	Variant     Variant        `json:"variant"`
	Labels      []string       `json:"labels"`
	Durations   []*big.Int     `json:"durations"`
	// Value is the amount attached by the caller.
	Value *big.Int `json:"value"`
	// Spent is what the upstream controller kept.
	Spent *big.Int `json:"spent"`
	// Refunded is what the caller got back, swept balance included.
	Refunded *big.Int `json:"refunded"`
	// Swept is the balance the contract held before the invocation.
	Swept     *big.Int   `json:"swept"`
	Referrals []Referral `json:"referrals"`
	Renewed   []Renewed  `json:"renewed"`
	Timestamp int64      `json:"timestamp"`
}
