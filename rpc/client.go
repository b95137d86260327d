package rpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/grailsmarket/ens-referrals/circuitbreaker"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/rpc/chain"
	"github.com/grailsmarket/ens-referrals/rpc/chain/ethclient"
)

const (
	// DefaultDialTimeout bounds dialing a single provider.
	DefaultDialTimeout = 10 * time.Second
)

var ErrNoProviders = errors.New("no providers configured for chain")

type dialFunc func(ctx context.Context, url string) (*gethrpc.Client, error)

// Client hands out chain clients by chain ID. Chain clients are created on
// first use and shared afterwards.
//
// Client is safe for concurrent use.
type Client struct {
	sync.RWMutex

	providerConfigs map[uint64][]params.ProviderConfig
	clients         map[uint64]chain.ClientInterface
	cbConfig        circuitbreaker.Config
	dial            dialFunc
	logger          *zap.Logger
}

// NewClient creates a client for the chain and providers of config.
func NewClient(logger *zap.Logger, config *params.Config) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		providerConfigs: map[uint64][]params.ProviderConfig{
			config.ChainID: config.Providers,
		},
		clients:  make(map[uint64]chain.ClientInterface),
		cbConfig: config.CircuitBreaker,
		dial:     gethrpc.DialContext,
		logger:   logger.Named("rpc"),
	}
}

// EthClient returns the chain client for chainID.
func (c *Client) EthClient(chainID uint64) (chain.ClientInterface, error) {
	c.RLock()
	client, ok := c.clients[chainID]
	c.RUnlock()
	if ok {
		return client, nil
	}

	c.Lock()
	defer c.Unlock()
	if client, ok := c.clients[chainID]; ok {
		return client, nil
	}

	providers := prepareProviders(c.providerConfigs[chainID])
	if len(providers) == 0 {
		return nil, errors.Wrapf(ErrNoProviders, "chain %d", chainID)
	}

	ethClients := make([]ethclient.EthClientInterface, 0, len(providers))
	for _, provider := range providers {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultDialTimeout)
		rpcClient, err := c.dial(ctx, provider.URL)
		cancel()
		if err != nil {
			c.logger.Warn("dial provider", zap.String("provider", provider.Key), zap.Error(err))
			continue
		}
		ethClients = append(ethClients, ethclient.NewEthClient(rpcClient, provider.Key))
	}
	if len(ethClients) == 0 {
		return nil, fmt.Errorf("could not dial any provider for chain %d", chainID)
	}

	client = chain.NewClient(c.logger, ethClients, chainID, c.cbConfig)
	c.clients[chainID] = client
	return client, nil
}

// SetClient registers a chain client, replacing the configured providers.
func (c *Client) SetClient(chainID uint64, client chain.ClientInterface) {
	c.Lock()
	defer c.Unlock()
	c.clients[chainID] = client
}

// Close closes every chain client handed out.
func (c *Client) Close() {
	c.Lock()
	defer c.Unlock()
	for chainID, client := range c.clients {
		client.Close()
		delete(c.clients, chainID)
	}
}
