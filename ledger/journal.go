package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// journalEntry is a state modification that can be undone.
type journalEntry interface {
	revert(l *Ledger)
}

type journal struct {
	entries []journalEntry
}

func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

func (j *journal) length() int {
	return len(j.entries)
}

func (j *journal) reset() {
	j.entries = j.entries[:0]
}

type (
	balanceChange struct {
		account common.Address
		prev    *big.Int
	}
	storageChange struct {
		account  common.Address
		key      common.Hash
		prevalue common.Hash
	}
	addLogChange struct{}
)

func (ch balanceChange) revert(l *Ledger) {
	if ch.prev == nil {
		delete(l.balances, ch.account)
		return
	}
	l.balances[ch.account] = ch.prev
}

func (ch storageChange) revert(l *Ledger) {
	slots := l.storage[ch.account]
	if ch.prevalue == (common.Hash{}) {
		delete(slots, ch.key)
		return
	}
	slots[ch.key] = ch.prevalue
}

func (ch addLogChange) revert(l *Ledger) {
	l.logs = l.logs[:len(l.logs)-1]
}
