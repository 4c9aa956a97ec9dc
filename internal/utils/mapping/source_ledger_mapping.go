package mapping

import (
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/models"
)

func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:   d.MovementID,
		BranchID:     d.BranchID,
		MovementDate: d.MovementDate.UTC(),
		Kind:         string(d.Kind),
		Amount:       d.Amount,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:   m.MovementID,
		BranchID:     m.BranchID,
		MovementDate: m.MovementDate.UTC(),
		Kind:         domain.MovementKind(m.Kind),
		Amount:       m.Amount,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelCardCharge(d domain.CardCharge) models.CardCharge {
	return models.CardCharge{
		CardChargeID: d.CardChargeID,
		BranchID:     d.BranchID,
		ChargeDate:   d.ChargeDate.UTC(),
		Amount:       d.Amount,
		Status:       string(d.Status),
		Reference:    d.Reference,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCardCharge(m models.CardCharge) domain.CardCharge {
	return domain.CardCharge{
		CardChargeID: m.CardChargeID,
		BranchID:     m.BranchID,
		ChargeDate:   m.ChargeDate.UTC(),
		Amount:       m.Amount,
		Status:       domain.CardChargeStatus(m.Status),
		Reference:    m.Reference,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelBankDeposit(d domain.BankDeposit) models.BankDeposit {
	return models.BankDeposit{
		BankDepositID: d.BankDepositID,
		BranchID:      d.BranchID,
		DepositDate:   d.DepositDate.UTC(),
		Amount:        d.Amount,
		Reference:     d.Reference,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBankDeposit(m models.BankDeposit) domain.BankDeposit {
	return domain.BankDeposit{
		BankDepositID: m.BankDepositID,
		BranchID:      m.BranchID,
		DepositDate:   m.DepositDate.UTC(),
		Amount:        m.Amount,
		Reference:     m.Reference,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOpeningFund normalizes the fund date, which is a DATE column.
func ToModelOpeningFund(d domain.OpeningFund) models.OpeningFund {
	return models.OpeningFund{
		OpeningFundID: d.OpeningFundID,
		BranchID:      d.BranchID,
		FundDate:      domain.NormalizeDate(d.FundDate),
		Amount:        d.Amount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainOpeningFund(m models.OpeningFund) domain.OpeningFund {
	return domain.OpeningFund{
		OpeningFundID: m.OpeningFundID,
		BranchID:      m.BranchID,
		FundDate:      domain.NormalizeDate(m.FundDate),
		Amount:        m.Amount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
