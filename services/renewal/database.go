package renewal

import (
	"database/sql"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/sqlite"
)

// Database stores committed renewal receipts.
type Database struct {
	db *sql.DB
}

func NewDatabase(db *sql.DB) *Database {
	return &Database{db: db}
}

// SaveReceipt stores a receipt together with its referrals.
func (db *Database) SaveReceipt(receipt *Receipt) (err error) {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			err = tx.Commit()
			return
		}
		_ = tx.Rollback()
	}()

	const insertReceipt = `INSERT INTO renewal_receipts(id, tx_hash, block_number, sender, contract, variant, labels, durations, value, spent, refunded, swept, renewed, timestamp)
					  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.Exec(insertReceipt,
		receipt.ID,
		receipt.TxHash.Hex(),
		receipt.BlockNumber,
		receipt.From.Hex(),
		receipt.Contract.Hex(),
		string(receipt.Variant),
		&sqlite.JSONBlob{Data: &receipt.Labels},
		&sqlite.JSONBlob{Data: &receipt.Durations},
		sqlite.BigInt{Int: receipt.Value},
		sqlite.BigInt{Int: receipt.Spent},
		sqlite.BigInt{Int: receipt.Refunded},
		sqlite.BigInt{Int: receipt.Swept},
		&sqlite.JSONBlob{Data: &receipt.Renewed},
		receipt.Timestamp,
	)
	if err != nil {
		return err
	}

	const insertReferral = `INSERT INTO renewal_referrals(receipt_id, log_index, label, label_hash, cost, duration, referrer)
					  VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, referral := range receipt.Referrals {
		_, err = tx.Exec(insertReferral,
			receipt.ID,
			referral.LogIndex,
			referral.Label,
			referral.LabelHash.Hex(),
			sqlite.BigInt{Int: referral.Cost},
			sqlite.BigInt{Int: referral.Duration},
			referral.Referrer.Hex(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetReceipts returns up to limit receipts, newest first.
func (db *Database) GetReceipts(limit int) ([]*Receipt, error) {
	const sqlQuery = `SELECT id, tx_hash, block_number, sender, contract, variant, labels, durations, value, spent, refunded, swept, renewed, timestamp
					  FROM renewal_receipts
					  ORDER BY timestamp DESC, block_number DESC
					  LIMIT ?`

	rows, err := db.db.Query(sqlQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Receipt
	for rows.Next() {
		var (
			receipt                         Receipt
			txHash, from, contract, variant string
			value, spent, refunded, swept   sqlite.BigInt
		)
		err = rows.Scan(
			&receipt.ID,
			&txHash,
			&receipt.BlockNumber,
			&from,
			&contract,
			&variant,
			&sqlite.JSONBlob{Data: &receipt.Labels},
			&sqlite.JSONBlob{Data: &receipt.Durations},
			&value,
			&spent,
			&refunded,
			&swept,
			&sqlite.JSONBlob{Data: &receipt.Renewed},
			&receipt.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		receipt.TxHash = common.HexToHash(txHash)
		receipt.From = common.HexToAddress(from)
		receipt.Contract = common.HexToAddress(contract)
		receipt.Variant = Variant(variant)
		receipt.Value = value.Int
		receipt.Spent = spent.Int
		receipt.Refunded = refunded.Int
		receipt.Swept = swept.Int
		result = append(result, &receipt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, receipt := range result {
		receipt.Referrals, err = db.GetReferrals(receipt.ID)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// GetReferrals returns the referrals recorded for a receipt in log order.
func (db *Database) GetReferrals(receiptID string) ([]Referral, error) {
	const sqlQuery = `SELECT log_index, label, label_hash, cost, duration, referrer
					  FROM renewal_referrals
					  WHERE receipt_id = ?
					  ORDER BY log_index`

	rows, err := db.db.Query(sqlQuery, receiptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Referral
	for rows.Next() {
		var (
			referral            Referral
			labelHash, referrer string
			cost, duration      sqlite.BigInt
		)
		err = rows.Scan(&referral.LogIndex, &referral.Label, &labelHash, &cost, &duration, &referrer)
		if err != nil {
			return nil, err
		}
		referral.LabelHash = common.HexToHash(labelHash)
		referral.Referrer = common.HexToHash(referrer)
		referral.Cost = cost.Int
		referral.Duration = duration.Int
		result = append(result, referral)
	}
	return result, rows.Err()
}

// TotalReferred sums the cost of every stored referral attributed to
// referrer.
func (db *Database) TotalReferred(referrer common.Hash) (*big.Int, error) {
	const sqlQuery = `SELECT cost FROM renewal_referrals WHERE referrer = ?`

	rows, err := db.db.Query(sqlQuery, referrer.Hex())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	total := new(big.Int)
	for rows.Next() {
		var cost sqlite.BigInt
		if err := rows.Scan(&cost); err != nil {
			return nil, err
		}
		if cost.Int != nil {
			total.Add(total, cost.Int)
		}
	}
	return total, rows.Err()
}
