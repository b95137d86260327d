package contracts

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/contracts/bulkrenewal"
	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/rpc"
)

type ContractMaker struct {
	RPCClient *rpc.Client
}

func NewContractMaker(client *rpc.Client) *ContractMaker {
	return &ContractMaker{RPCClient: client}
}

// NewRegistrarController binds the ETHRegistrarController of chainID, or the
// one at override when it is set.
func (c *ContractMaker) NewRegistrarController(chainID uint64, override *common.Address) (*registrar.ETHRegistrarControllerCaller, error) {
	contractAddr, err := controllerAddress(chainID, override)
	if err != nil {
		return nil, err
	}

	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return registrar.NewETHRegistrarControllerCaller(
		contractAddr,
		backend,
	)
}

// NewBulkRenewal binds a deployed bulk renewal contract.
func (c *ContractMaker) NewBulkRenewal(chainID uint64, address common.Address) (*bulkrenewal.BulkRenewalCaller, error) {
	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return bulkrenewal.NewBulkRenewalCaller(address, backend)
}

func controllerAddress(chainID uint64, override *common.Address) (common.Address, error) {
	if override != nil && *override != (common.Address{}) {
		return *override, nil
	}
	return registrar.ControllerAddress(chainID)
}
