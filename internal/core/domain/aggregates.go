package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceCounts holds the number of rows that contributed to each aggregate.
type SourceCounts struct {
	Expenses       int `json:"expenses"`
	LegacyDeposits int `json:"legacyDeposits"`
	BankDeposits   int `json:"bankDeposits"`
	CardCharges    int `json:"cardCharges"`
	OpeningFunds   int `json:"openingFunds"`
}

// Aggregates are the derived totals of one branch and calendar day.
type Aggregates struct {
	BranchID    int64           `json:"branchID"`
	Date        time.Time       `json:"date"`
	Expenses    decimal.Decimal `json:"expenses"`
	Deposits    decimal.Decimal `json:"deposits"`
	CardPayment decimal.Decimal `json:"cardPayment"`
	OpeningFund decimal.Decimal `json:"openingFund"`
	Counts      SourceCounts    `json:"counts"`
}
