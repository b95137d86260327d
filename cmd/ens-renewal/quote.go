package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/grailsmarket/ens-referrals/contracts"
	"github.com/grailsmarket/ens-referrals/logutils"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/rpc"
	"github.com/grailsmarket/ens-referrals/services/renewal"
)

// chainOracle binds the configured ETHRegistrarController over the
// configured providers. The returned function releases the connections.
func chainOracle(config *params.Config) (renewal.PriceOracle, func(), error) {
	client := rpc.NewClient(logutils.ZapLogger(), config)

	var override *common.Address
	if config.ControllerAddress != "" {
		addr := common.HexToAddress(config.ControllerAddress)
		override = &addr
	}
	caller, err := contracts.NewContractMaker(client).NewRegistrarController(config.ChainID, override)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return renewal.NewChainPriceOracle(caller), client.Close, nil
}

func quote(cCtx *cli.Context) error {
	config := configFrom(cCtx)

	labels, err := renewal.NormaliseLabels(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no names given")
	}
	duration, err := durationSeconds(cCtx)
	if err != nil {
		return err
	}

	oracle, closeOracle, err := chainOracle(config)
	if err != nil {
		return err
	}
	defer closeOracle()

	w := cCtx.App.Writer
	for _, label := range labels {
		price, err := oracle.RentPrice(cCtx.Context, label, duration)
		if err != nil {
			return renewal.ErrUpstreamQuoteFailure.WithDetails(label).Wrap(err)
		}
		fmt.Fprintf(w, "%s.eth\tbase %s ETH\tpremium %s ETH\n", label, renewal.WeiToEther(price.Base), renewal.WeiToEther(price.Premium))
	}

	total, err := renewal.Quote(cCtx.Context, oracle, labels, repeat(duration, len(labels)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "total\t%s ETH\n", renewal.WeiToEther(total))
	return nil
}
