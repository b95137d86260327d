package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/grailsmarket/ens-referrals/logutils"
	"github.com/grailsmarket/ens-referrals/metrics"
	"github.com/grailsmarket/ens-referrals/params"
	"github.com/grailsmarket/ens-referrals/signal"
)

const (
	ConfigFlag   = "config"
	LogLevelFlag = "log-level"
	LogFileFlag  = "log-file"
	DataDirFlag  = "data-dir"
	SignalsFlag  = "signals"

	DurationFlag    = "duration"
	ValueFlag       = "value"
	PriceFlag       = "price"
	FromFlag        = "from"
	PreexistingFlag = "preexisting"
	LimitFlag       = "limit"
	FundFlag        = "fund"
	ListenFlag      = "listen"

	defaultDuration = 365 * 24 * time.Hour

	configMetadataKey  = "config"
	metricsMetadataKey = "metrics"
)

var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    ConfigFlag,
		Aliases: []string{"c"},
		Usage:   "JSON configuration file",
		EnvVars: []string{"ENS_RENEWAL_CONFIG"},
	},
	&cli.StringFlag{
		Name:    LogLevelFlag,
		Usage:   "Log level: ERROR, WARN, INFO or DEBUG",
		EnvVars: []string{"ENS_RENEWAL_LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    LogFileFlag,
		Usage:   "Write logs to a rotated file instead of stderr",
		EnvVars: []string{"ENS_RENEWAL_LOG_FILE"},
	},
	&cli.StringFlag{
		Name:    DataDirFlag,
		Usage:   "Directory of the receipts database",
		EnvVars: []string{"ENS_RENEWAL_DATA_DIR"},
	},
	&cli.BoolFlag{
		Name:    SignalsFlag,
		Usage:   "Write renewal signals as JSON lines to stderr",
		EnvVars: []string{"ENS_RENEWAL_SIGNALS"},
	},
}

var QuoteFlags = []cli.Flag{
	&cli.DurationFlag{
		Name:    DurationFlag,
		Aliases: []string{"d"},
		Usage:   "Renewal duration of every name",
		Value:   defaultDuration,
	},
}

var SimulateFlags = []cli.Flag{
	&cli.DurationFlag{
		Name:    DurationFlag,
		Aliases: []string{"d"},
		Usage:   "Renewal duration of every name",
		Value:   defaultDuration,
	},
	&cli.StringFlag{
		Name:     ValueFlag,
		Usage:    "Ether attached to the renewal, e.g. 0.03",
		Required: true,
	},
	&cli.StringSliceFlag{
		Name:  PriceFlag,
		Usage: "Yearly price of a name as name=ether, quoted from chain when missing",
	},
	&cli.StringFlag{
		Name:  FromFlag,
		Usage: "Address of the renewing account",
		Value: "0x000000000000000000000000000000000000dEaD",
	},
	&cli.StringFlag{
		Name:  PreexistingFlag,
		Usage: "Ether held by the renewal contract before the call",
		Value: "0",
	},
}

var ServeFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  ListenFlag,
		Usage: "host:port of the JSON-RPC endpoint",
		Value: "127.0.0.1:8645",
	},
	&cli.StringSliceFlag{
		Name:  PriceFlag,
		Usage: "Registered name and its yearly price as name=ether",
	},
	&cli.StringSliceFlag{
		Name:  FundFlag,
		Usage: "Starting balance of an account as address=ether",
	},
}

var ReceiptsFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    LimitFlag,
		Aliases: []string{"n"},
		Usage:   "Number of receipts to list",
		Value:   20,
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "ens-renewal",
		Usage:  "Quote and simulate referred bulk renewals of ENS names",
		Flags:  GlobalFlags,
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			{
				Name:      "quote",
				Aliases:   []string{"q"},
				Usage:     "Quote renewing names against the configured chain",
				ArgsUsage: "<name>...",
				Flags:     QuoteFlags,
				Action:    quote,
			},
			{
				Name:      "simulate",
				Aliases:   []string{"s"},
				Usage:     "Run a bulk renewal on a local ledger and print its receipt",
				ArgsUsage: "<name>...",
				Flags:     SimulateFlags,
				Action:    simulate,
			},
			{
				Name:        "serve",
				Usage:       "Serve the renewal JSON-RPC API over a local ledger",
				Description: "Requests name the renewing account in their from argument and are not authenticated: any caller can spend any funded account. Only bind to trusted interfaces.",
				Flags:       ServeFlags,
				Action:      serve,
			},
			{
				Name:   "receipts",
				Usage:  "List stored renewal receipts",
				Flags:  ReceiptsFlags,
				Action: receipts,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logutils.ZapLogger().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// setup loads the configuration, installs the logger and starts the
// metrics server when one is configured.
func setup(cCtx *cli.Context) error {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	cCtx.App.Metadata = map[string]interface{}{configMetadataKey: config}

	logger, err := logutils.NewZapLogger(config.LogConfig.Level, logutils.FileOptions{
		Filename:   config.LogConfig.File,
		MaxSize:    config.LogConfig.MaxSize,
		MaxBackups: config.LogConfig.MaxBackups,
		Compress:   config.LogConfig.CompressRotated,
	})
	if err != nil {
		return err
	}
	logutils.SetZapLogger(logger)

	if cCtx.Bool(SignalsFlag) {
		w := cCtx.App.ErrWriter
		signal.SetDefaultNodeNotificationHandler(func(jsonEvent string) {
			fmt.Fprintln(w, jsonEvent)
		})
	}

	if config.MetricsAddress != "" {
		server := metrics.NewMetricsServer(config.MetricsAddress, nil)
		cCtx.App.Metadata[metricsMetadataKey] = server
		go server.Listen()
	}
	return nil
}

func teardown(cCtx *cli.Context) error {
	signal.ResetDefaultNodeNotificationHandler()
	if server, ok := cCtx.App.Metadata[metricsMetadataKey].(*metrics.Server); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(ctx)
	}
	return nil
}

func configFrom(cCtx *cli.Context) *params.Config {
	return cCtx.App.Metadata[configMetadataKey].(*params.Config)
}
