// Package ledger implements an in-memory account ledger that executes
// contract invocations the way an Ethereum transaction does: value moves
// between accounts, contracts may call each other with value attached, and a
// failing invocation leaves no trace. Invocations are serialized; only one
// runs at a time.
package ledger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// MaxCallDepth bounds nested calls within one invocation.
const MaxCallDepth = 1024

var (
	ErrInsufficientBalance = errors.New("insufficient balance for transfer")
	ErrNegativeValue       = errors.New("negative value")
	ErrDepth               = errors.New("max call depth exceeded")
	ErrAddressInUse        = errors.New("contract address already in use")
	ErrPanicked            = errors.New("invocation panicked")
)

// Contract is code deployed at a ledger address.
type Contract interface {
	// Receive is invoked when the contract is sent value without a call.
	// Returning an error rejects the transfer.
	Receive(env *Env) error
}

// Message describes the outermost call of an invocation.
type Message struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

// Receipt is the outcome of a committed invocation.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	From        common.Address
	To          common.Address
	Value       *big.Int
	Logs        []*types.Log
}

// Ledger holds balances, contract storage and deployed contracts.
type Ledger struct {
	mu sync.Mutex

	balances  map[common.Address]*big.Int
	storage   map[common.Address]map[common.Hash]common.Hash
	contracts map[common.Address]Contract
	nonces    map[common.Address]uint64

	journal     journal
	logs        []*types.Log
	blockNumber uint64
}

func New() *Ledger {
	return &Ledger{
		balances:  make(map[common.Address]*big.Int),
		storage:   make(map[common.Address]map[common.Hash]common.Hash),
		contracts: make(map[common.Address]Contract),
		nonces:    make(map[common.Address]uint64),
	}
}

// Credit adds amount to the balance of addr outside of any invocation.
// It is meant for funding accounts in genesis-like setups.
func (l *Ledger) Credit(addr common.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] = new(big.Int).Add(l.balanceOf(addr), amount)
}

// SetStorage writes a storage slot outside of any invocation.
func (l *Ledger) SetStorage(addr common.Address, key, value common.Hash) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slots, ok := l.storage[addr]
	if !ok {
		slots = make(map[common.Hash]common.Hash)
		l.storage[addr] = slots
	}
	slots[key] = value
}

// BalanceOf returns a copy of the committed balance of addr.
func (l *Ledger) BalanceOf(addr common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.balanceOf(addr))
}

// StorageAt returns a committed storage slot of addr.
func (l *Ledger) StorageAt(addr common.Address, key common.Hash) common.Hash {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.storage[addr][key]
}

// ContractAt returns the contract deployed at addr, if any.
func (l *Ledger) ContractAt(addr common.Address) (Contract, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.contracts[addr]
	return c, ok
}

// BlockNumber returns the number of committed invocations.
func (l *Ledger) BlockNumber() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.blockNumber
}

// Install places contract at a fixed address, like a genesis allocation.
func (l *Ledger) Install(addr common.Address, contract Contract) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.contracts[addr]; ok {
		return ErrAddressInUse
	}
	l.contracts[addr] = contract
	return nil
}

// Deploy creates a contract owned by deployer. The constructor runs as an
// invocation at the new address, so its side effects are reverted when it
// fails. The address is derived from the deployer and its nonce.
func (l *Ledger) Deploy(ctx context.Context, deployer common.Address, constructor func(env *Env) (Contract, error)) (common.Address, *Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	addr := crypto.CreateAddress(deployer, l.nonces[deployer])
	if _, ok := l.contracts[addr]; ok {
		return common.Address{}, nil, ErrAddressInUse
	}

	var contract Contract
	receipt, err := l.execute(ctx, Message{From: deployer, To: addr}, func(env *Env) error {
		var err error
		contract, err = constructor(env)
		return err
	})
	if err != nil {
		return common.Address{}, nil, err
	}
	l.contracts[addr] = contract
	return addr, receipt, nil
}

// Execute runs fn as one invocation of msg.To by msg.From with msg.Value
// attached. Either every state change made by fn is committed or, when fn
// returns an error, none is.
func (l *Ledger) Execute(ctx context.Context, msg Message, fn func(env *Env) error) (*Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.execute(ctx, msg, fn)
}

// Transfer sends amount from one account to another as its own invocation.
// When to is a contract its Receive hook decides whether to accept.
func (l *Ledger) Transfer(ctx context.Context, from, to common.Address, amount *big.Int) (*Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.execute(ctx, Message{From: from, To: to, Value: amount}, func(env *Env) error {
		return l.receive(env)
	})
}

func (l *Ledger) execute(ctx context.Context, msg Message, fn func(env *Env) error) (receipt *Receipt, err error) {
	value := msg.Value
	if value == nil {
		value = new(big.Int)
	}
	if value.Sign() < 0 {
		return nil, ErrNegativeValue
	}

	nonce := l.nonces[msg.From]
	l.nonces[msg.From] = nonce + 1
	txHash := txHash(msg.From, nonce)

	l.journal.reset()
	l.logs = l.logs[:0]

	// A panicking contract fails the invocation like any other error.
	defer func() {
		if r := recover(); r != nil {
			l.revertToSnapshot(0)
			l.logs = l.logs[:0]
			receipt, err = nil, fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	env := &Env{
		ctx:    ctx,
		ledger: l,
		caller: msg.From,
		self:   msg.To,
		value:  new(big.Int).Set(value),
	}
	err = l.transfer(msg.From, msg.To, value)
	if err == nil {
		err = fn(env)
	}
	if err != nil {
		l.revertToSnapshot(0)
		return nil, err
	}

	l.blockNumber++
	logs := make([]*types.Log, len(l.logs))
	for i, log := range l.logs {
		log.BlockNumber = l.blockNumber
		log.TxHash = txHash
		log.Index = uint(i)
		log.TxIndex = 0
		logs[i] = log
	}
	l.journal.reset()
	l.logs = l.logs[:0]

	return &Receipt{
		TxHash:      txHash,
		BlockNumber: l.blockNumber,
		From:        msg.From,
		To:          msg.To,
		Value:       new(big.Int).Set(value),
		Logs:        logs,
	}, nil
}

func (l *Ledger) receive(env *Env) error {
	contract, ok := l.contracts[env.self]
	if !ok {
		return nil
	}
	return contract.Receive(env)
}

func (l *Ledger) balanceOf(addr common.Address) *big.Int {
	if b, ok := l.balances[addr]; ok {
		return b
	}
	return new(big.Int)
}

func (l *Ledger) setBalance(addr common.Address, amount *big.Int) {
	l.journal.append(balanceChange{account: addr, prev: l.balances[addr]})
	l.balances[addr] = amount
}

func (l *Ledger) transfer(from, to common.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if l.balanceOf(from).Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	l.setBalance(from, new(big.Int).Sub(l.balanceOf(from), amount))
	l.setBalance(to, new(big.Int).Add(l.balanceOf(to), amount))
	return nil
}

func (l *Ledger) getState(addr common.Address, key common.Hash) common.Hash {
	return l.storage[addr][key]
}

func (l *Ledger) setState(addr common.Address, key, value common.Hash) {
	slots, ok := l.storage[addr]
	if !ok {
		slots = make(map[common.Hash]common.Hash)
		l.storage[addr] = slots
	}
	l.journal.append(storageChange{account: addr, key: key, prevalue: slots[key]})
	if value == (common.Hash{}) {
		delete(slots, key)
		return
	}
	slots[key] = value
}

func (l *Ledger) addLog(log *types.Log) {
	l.journal.append(addLogChange{})
	l.logs = append(l.logs, log)
}

func (l *Ledger) snapshot() int {
	return l.journal.length()
}

func (l *Ledger) revertToSnapshot(id int) {
	for i := l.journal.length() - 1; i >= id; i-- {
		l.journal.entries[i].revert(l)
	}
	l.journal.entries = l.journal.entries[:id]
}

func txHash(from common.Address, nonce uint64) common.Hash {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	return crypto.Keccak256Hash(from.Bytes(), n[:])
}
