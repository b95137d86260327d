package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/grailsmarket/ens-referrals/services/renewal"
)

func receipts(cCtx *cli.Context) error {
	config := configFrom(cCtx)
	db, err := openReceiptsDB(config)
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("no data dir configured")
	}
	defer db.Close()

	stored, err := renewal.NewDatabase(db).GetReceipts(cCtx.Int(LimitFlag))
	if err != nil {
		return err
	}
	for i, receipt := range stored {
		if i > 0 {
			fmt.Fprintln(cCtx.App.Writer)
		}
		printReceipt(cCtx, receipt)
	}
	return nil
}
