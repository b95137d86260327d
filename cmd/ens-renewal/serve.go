package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/grailsmarket/ens-referrals/logutils"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/services/renewal"
	"github.com/grailsmarket/ens-referrals/services/renewal/upstream"
)

// serviceDeployer deploys the contract served by the serve command.
var serviceDeployer = common.HexToAddress("0x00000000000000000000000000000000000de910")

// newRenewalService deploys the configured variant on a fresh simulation,
// registers every priced name and funds the given accounts. The service
// renews on behalf of whatever from address a request names.
func newRenewalService(ctx context.Context, config *params.Config, pricing upstream.StaticPricing, funds map[common.Address]*big.Int, db *sql.DB, now func() time.Time) (*renewal.Service, *simulation, error) {
	sim, err := newSimulation(config, pricing)
	if err != nil {
		return nil, nil, err
	}
	for label := range pricing {
		sim.controller.Register(label, uint64(now().Unix()))
	}
	for addr, amount := range funds {
		sim.ledger.Credit(addr, amount)
	}

	contract, err := sim.deploy(ctx, config, serviceDeployer)
	if err != nil {
		return nil, nil, err
	}

	var database *renewal.Database
	if db != nil {
		database = renewal.NewDatabase(db)
	}
	api, err := renewal.NewAPI(sim.ledger, contract, database, now, logutils.ZapLogger())
	if err != nil {
		return nil, nil, err
	}
	return renewal.NewService(api), sim, nil
}

func newRPCServer(service *renewal.Service) (*gethrpc.Server, error) {
	server := gethrpc.NewServer()
	for _, api := range service.APIs() {
		if err := server.RegisterName(api.Namespace, api.Service); err != nil {
			server.Stop()
			return nil, err
		}
	}
	return server, nil
}

func serve(cCtx *cli.Context) error {
	config := configFrom(cCtx)
	logger := logutils.ZapLogger().Named("serve")

	prices, err := parsePrices(cCtx.StringSlice(PriceFlag))
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return fmt.Errorf("no names to serve, pass --%s name=ether", PriceFlag)
	}
	funds, err := parseFunds(cCtx.StringSlice(FundFlag))
	if err != nil {
		return err
	}

	db, err := openReceiptsDB(config)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	service, _, err := newRenewalService(cCtx.Context, config, fixedPricing(prices), funds, db, time.Now)
	if err != nil {
		return err
	}
	if err := service.Start(); err != nil {
		return err
	}
	defer func() {
		if err := service.Stop(); err != nil {
			logger.Error("stopping renewal service", zap.Error(err))
		}
	}()

	server, err := newRPCServer(service)
	if err != nil {
		return err
	}
	defer server.Stop()

	httpServer := &http.Server{
		Addr:              cCtx.String(ListenFlag),
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logger.Info("serving renewal API", zap.String("addr", httpServer.Addr), zap.Int("names", len(prices)))

	ctx, stop := ossignal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
