package registrar

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var errorNotAvailableOnChainID = errors.New("not available for chainID")

var controllerAddressByChainID = map[uint64]common.Address{
	1:        common.HexToAddress("0x253553366Da8546fC250F225fe3d25d0C782303b"), // mainnet
	11155111: common.HexToAddress("0xFED6a969AaA60E4961FCD3EBF1A2e8913ac65B72"), // sepolia
}

// ControllerAddress returns the ETHRegistrarController deployed on chainID.
func ControllerAddress(chainID uint64) (common.Address, error) {
	addr, exists := controllerAddressByChainID[chainID]
	if !exists {
		return *new(common.Address), errorNotAvailableOnChainID
	}
	return addr, nil
}
