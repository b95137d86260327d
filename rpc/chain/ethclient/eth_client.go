package ethclient

//go:generate mockgen -package=mock_ethclient -source=eth_client.go -destination=mock/client/ethclient/eth_client.go

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// EthClientInterface is the part of a node connection the renewal tooling
// reads from.
type EthClientInterface interface {
	bind.ContractCaller
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	GetName() string
	Close()
}

// EthClient implements EthClientInterface
type EthClient struct {
	*ethclient.Client
	name      string
	rpcClient *rpc.Client
}

func NewEthClient(rpcClient *rpc.Client, name string) *EthClient {
	return &EthClient{
		Client:    ethclient.NewClient(rpcClient),
		name:      name,
		rpcClient: rpcClient,
	}
}

func (c *EthClient) GetName() string {
	return c.name
}
