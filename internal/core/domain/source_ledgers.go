package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a sale/expense movement.
type MovementKind string

const (
	MovementSale    MovementKind = "SALE"
	MovementExpense MovementKind = "EXPENSE"
	MovementDeposit MovementKind = "DEPOSIT"
	// MovementCashFund is the pre-migration tag under which deposits were recorded
	// before bank deposits got their own ledger.
	MovementCashFund MovementKind = "CASH_FUND"
)

// Movement is a sale or expense record of a branch.
type Movement struct {
	MovementID   int64           `json:"movementID"`
	BranchID     int64           `json:"branchID"`
	MovementDate time.Time       `json:"movementDate"`
	Kind         MovementKind    `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	AuditFields
}

// CardChargeStatus is the settlement state of a card (TPV) charge.
type CardChargeStatus string

const (
	CardChargeSuccessful CardChargeStatus = "SUCCESSFUL"
	CardChargePending    CardChargeStatus = "PENDING"
)

// CardCharge is a charge taken on a branch's card terminal.
type CardCharge struct {
	CardChargeID int64            `json:"cardChargeID"`
	BranchID     int64            `json:"branchID"`
	ChargeDate   time.Time        `json:"chargeDate"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       CardChargeStatus `json:"status"`
	Reference    string           `json:"reference"`
	AuditFields
}

// BankDeposit is cash taken from a branch to the bank.
type BankDeposit struct {
	BankDepositID int64           `json:"bankDepositID"`
	BranchID      int64           `json:"branchID"`
	DepositDate   time.Time       `json:"depositDate"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	AuditFields
}

// OpeningFund is the cash a branch starts the day with. Unique per (branch, date).
type OpeningFund struct {
	OpeningFundID int64           `json:"openingFundID"`
	BranchID      int64           `json:"branchID"`
	FundDate      time.Time       `json:"fundDate"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}
