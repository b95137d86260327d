package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/grailsmarket/ens-referrals/circuitbreaker"
	"github.com/grailsmarket/ens-referrals/rpc/chain/ethclient"
)

// ClientInterface is a chain connection usable as a contract binding backend.
type ClientInterface interface {
	bind.ContractCaller
	BlockNumber(ctx context.Context) (uint64, error)
	NetworkID() uint64
	Close()
}

var _ ClientInterface = (*ClientWithFallback)(nil)

// ClientWithFallback calls the first healthy provider of a chain and moves on
// to the next one when a provider fails or its circuit is open.
type ClientWithFallback struct {
	ChainID        uint64
	ethClients     []ethclient.EthClientInterface
	circuitbreaker *circuitbreaker.CircuitBreaker
	logger         *zap.Logger
}

var vmErrors = []error{
	vm.ErrOutOfGas,
	vm.ErrCodeStoreOutOfGas,
	vm.ErrDepth,
	vm.ErrInsufficientBalance,
	vm.ErrContractAddressCollision,
	vm.ErrExecutionReverted,
	vm.ErrMaxCodeSizeExceeded,
	vm.ErrInvalidJump,
	vm.ErrWriteProtection,
	vm.ErrReturnDataOutOfBounds,
	vm.ErrGasUintOverflow,
	vm.ErrInvalidCode,
	vm.ErrNonceUintOverflow,
}

func NewClient(logger *zap.Logger, ethClients []ethclient.EthClientInterface, chainID uint64, cbConfig circuitbreaker.Config) *ClientWithFallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientWithFallback{
		ChainID:        chainID,
		ethClients:     ethClients,
		circuitbreaker: circuitbreaker.NewCircuitBreaker(cbConfig),
		logger:         logger.With(zap.Uint64("chainID", chainID)),
	}
}

func (c *ClientWithFallback) NetworkID() uint64 {
	return c.ChainID
}

func (c *ClientWithFallback) Close() {
	for _, ec := range c.ethClients {
		ec.Close()
	}
}

// isVMError reports errors produced by contract execution. These are answers,
// not provider failures, and are never retried on another provider.
func isVMError(err error) bool {
	if strings.HasPrefix(err.Error(), "execution reverted") {
		return true
	}
	for _, vmError := range vmErrors {
		if err == vmError {
			return true
		}
	}
	return false
}

func (c *ClientWithFallback) circuitName(ec ethclient.EthClientInterface) string {
	return fmt.Sprintf("ethClient_%d_%s", c.ChainID, ec.GetName())
}

func (c *ClientWithFallback) makeCall(ctx context.Context, method string, call func(ctx context.Context, ec ethclient.EthClientInterface) (any, error)) (any, error) {
	var vmError error

	cmd := circuitbreaker.NewCommand(ctx, nil)
	for _, ec := range c.ethClients {
		ec := ec
		cmd.Add(circuitbreaker.NewFunctor(func(ctx context.Context) ([]any, error) {
			res, err := call(ctx, ec)
			if err != nil {
				if isVMError(err) {
					vmError = err
					cmd.Cancel()
					return nil, nil
				}
				return nil, err
			}
			return []any{res}, nil
		}, c.circuitName(ec)))
	}

	result := c.circuitbreaker.Execute(cmd)
	if vmError != nil {
		return nil, vmError
	}
	if result.Error() != nil {
		c.logger.Warn("all providers failed", zap.String("method", method), zap.Error(result.Error()))
		return nil, result.Error()
	}
	if len(c.ethClients) > 1 && result.Provider() != c.circuitName(c.ethClients[0]) {
		c.logger.Debug("served by fallback provider", zap.String("method", method), zap.String("provider", result.Provider()))
	}
	return result.Result()[0], nil
}

func (c *ClientWithFallback) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	res, err := c.makeCall(ctx, "eth_getCode", func(ctx context.Context, ec ethclient.EthClientInterface) (any, error) {
		return ec.CodeAt(ctx, account, blockNumber)
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}

func (c *ClientWithFallback) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	res, err := c.makeCall(ctx, "eth_call", func(ctx context.Context, ec ethclient.EthClientInterface) (any, error) {
		return ec.CallContract(ctx, call, blockNumber)
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}

func (c *ClientWithFallback) BlockNumber(ctx context.Context) (uint64, error) {
	res, err := c.makeCall(ctx, "eth_blockNumber", func(ctx context.Context, ec ethclient.EthClientInterface) (any, error) {
		return ec.BlockNumber(ctx)
	})
	if err != nil {
		return 0, err
	}
	return res.(uint64), nil
}
