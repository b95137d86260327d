package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Env is the execution context of one call frame. It is only valid while the
// invocation that created it is running.
type Env struct {
	ctx    context.Context
	ledger *Ledger
	caller common.Address
	self   common.Address
	value  *big.Int
	depth  int
}

func (e *Env) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// Caller is the account that made this call.
func (e *Env) Caller() common.Address {
	return e.caller
}

// Address is the account executing this call.
func (e *Env) Address() common.Address {
	return e.self
}

// Value is the amount attached to this call.
func (e *Env) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

func (e *Env) Depth() int {
	return e.depth
}

func (e *Env) Balance(addr common.Address) *big.Int {
	return new(big.Int).Set(e.ledger.balanceOf(addr))
}

func (e *Env) SelfBalance() *big.Int {
	return e.Balance(e.self)
}

// GetState reads a storage slot of the executing account.
func (e *Env) GetState(key common.Hash) common.Hash {
	return e.ledger.getState(e.self, key)
}

// SetState writes a storage slot of the executing account.
func (e *Env) SetState(key, value common.Hash) {
	e.ledger.setState(e.self, key, value)
}

// Emit records a log on behalf of the executing account.
func (e *Env) Emit(topics []common.Hash, data []byte) {
	e.ledger.addLog(&types.Log{
		Address: e.self,
		Topics:  topics,
		Data:    data,
	})
}

// Call invokes fn as a call from the executing account to `to` with value
// attached. Changes made by the callee are reverted when fn fails; the error
// is returned to the caller, which decides whether to propagate it.
func (e *Env) Call(to common.Address, value *big.Int, fn func(callee *Env) error) error {
	if value == nil {
		value = new(big.Int)
	}
	if value.Sign() < 0 {
		return ErrNegativeValue
	}
	if e.depth+1 > MaxCallDepth {
		return ErrDepth
	}

	snapshot := e.ledger.snapshot()
	if err := e.ledger.transfer(e.self, to, value); err != nil {
		return err
	}

	callee := &Env{
		ctx:    e.ctx,
		ledger: e.ledger,
		caller: e.self,
		self:   to,
		value:  new(big.Int).Set(value),
		depth:  e.depth + 1,
	}
	if err := fn(callee); err != nil {
		e.ledger.revertToSnapshot(snapshot)
		return err
	}
	return nil
}

// Transfer sends amount to `to`. A contract recipient runs its Receive hook
// and may reject the transfer.
func (e *Env) Transfer(to common.Address, amount *big.Int) error {
	return e.Call(to, amount, e.ledger.receive)
}
