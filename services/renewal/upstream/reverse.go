package upstream

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ens "github.com/wealdtech/go-ens/v3"

	"github.com/grailsmarket/ens-referrals/ledger"
)

// ReverseRegistrar records which account owns the reverse record
// <address>.addr.reverse of the account that claims it.
type ReverseRegistrar struct {
	ledger  *ledger.Ledger
	address common.Address
}

func NewReverseRegistrar(l *ledger.Ledger, address common.Address) (*ReverseRegistrar, error) {
	rr := &ReverseRegistrar{ledger: l, address: address}
	if err := l.Install(address, rr); err != nil {
		return nil, err
	}
	return rr, nil
}

func (rr *ReverseRegistrar) Address() common.Address {
	return rr.address
}

// Claim transfers the reverse record of the caller to owner.
func (rr *ReverseRegistrar) Claim(env *ledger.Env, owner common.Address) (common.Hash, error) {
	node, err := ReverseNode(env.Caller())
	if err != nil {
		return common.Hash{}, err
	}
	env.SetState(node, common.BytesToHash(owner.Bytes()))

	event := reverseABI.Events["ReverseClaimed"]
	env.Emit([]common.Hash{event.ID, common.BytesToHash(env.Caller().Bytes()), node}, nil)
	return node, nil
}

// Owner returns the owner of the reverse record of addr.
func (rr *ReverseRegistrar) Owner(addr common.Address) (common.Address, error) {
	node, err := ReverseNode(addr)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(rr.ledger.StorageAt(rr.address, node).Bytes()), nil
}

func (rr *ReverseRegistrar) Receive(env *ledger.Env) error {
	return ErrPlainTransfer
}

// ReverseNode is the namehash of the reverse name of addr.
func ReverseNode(addr common.Address) (common.Hash, error) {
	name := fmt.Sprintf("%s.addr.reverse", strings.ToLower(addr.Hex()[2:]))
	hash, err := ens.NameHash(name)
	if err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}
