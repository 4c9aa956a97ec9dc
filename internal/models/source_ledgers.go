package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement mirrors a row of movements.
type Movement struct {
	MovementID   int64           `db:"movement_id"`
	BranchID     int64           `db:"branch_id"`
	MovementDate time.Time       `db:"movement_date"`
	Kind         string          `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	AuditFields
}

// CardCharge mirrors a row of card_charges.
type CardCharge struct {
	CardChargeID int64           `db:"card_charge_id"`
	BranchID     int64           `db:"branch_id"`
	ChargeDate   time.Time       `db:"charge_date"`
	Amount       decimal.Decimal `db:"amount"`
	Status       string          `db:"status"`
	Reference    string          `db:"reference"`
	AuditFields
}

// BankDeposit mirrors a row of bank_deposits.
type BankDeposit struct {
	BankDepositID int64           `db:"bank_deposit_id"`
	BranchID      int64           `db:"branch_id"`
	DepositDate   time.Time       `db:"deposit_date"`
	Amount        decimal.Decimal `db:"amount"`
	Reference     string          `db:"reference"`
	AuditFields
}

// OpeningFund mirrors a row of opening_funds. (branch_id, fund_date) is unique.
type OpeningFund struct {
	OpeningFundID int64           `db:"opening_fund_id"`
	BranchID      int64           `db:"branch_id"`
	FundDate      time.Time       `db:"fund_date"`
	Amount        decimal.Decimal `db:"amount"`
	AuditFields
}
