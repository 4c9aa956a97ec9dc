package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the pgsql repositories. Transactions are
// emulated with a snapshot of the summary and history tables taken at Begin.
type memStore struct {
	mu sync.Mutex

	branches  map[int64]bool
	summaries map[int64]domain.DailySummary
	history   []domain.ChangeHistoryEntry
	movements []domain.Movement
	charges   []domain.CardCharge
	deposits  []domain.BankDeposit
	funds     []domain.OpeningFund
	nextID    int64

	snapshot *memSnapshot

	failHistoryInsert error
	failMovementList  error
}

type memSnapshot struct {
	summaries map[int64]domain.DailySummary
	history   []domain.ChangeHistoryEntry
}

var (
	_ portsrepo.DailySummaryRepositoryWithTx  = (*memStore)(nil)
	_ portsrepo.ChangeHistoryRepositoryFacade = (*memStore)(nil)
	_ portsrepo.SourceLedgerRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.BranchReader                  = (*memStore)(nil)
)

func newMemStore(branchIDs ...int64) *memStore {
	s := &memStore{
		branches:  map[int64]bool{},
		summaries: map[int64]domain.DailySummary{},
	}
	for _, id := range branchIDs {
		s.branches[id] = true
	}
	return s
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &memSnapshot{summaries: make(map[int64]domain.DailySummary, len(s.summaries))}
	for k, v := range s.summaries {
		snap.summaries[k] = v
	}
	snap.history = append(snap.history, s.history...)
	s.snapshot = snap
	return nil, nil
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	s.summaries = s.snapshot.summaries
	s.history = s.snapshot.history
	s.snapshot = nil
	return nil
}

// --- BranchReader ---

func (s *memStore) BranchExists(ctx context.Context, branchID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branches[branchID], nil
}

// --- DailySummary repository ---

func (s *memStore) FindSummaryByID(ctx context.Context, summaryID int64) (*domain.DailySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, ok := s.summaries[summaryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &summary, nil
}

func (s *memStore) FindSummaryByIDForUpdate(ctx context.Context, tx pgx.Tx, summaryID int64) (*domain.DailySummary, error) {
	return s.FindSummaryByID(ctx, summaryID)
}

func (s *memStore) FindSummaryByBranchAndDate(ctx context.Context, branchID int64, date time.Time) (*domain.DailySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, summary := range s.summaries {
		if summary.BranchID == branchID && summary.SummaryDate.Equal(domain.NormalizeDate(date)) {
			return &summary, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) ListSummaries(ctx context.Context, filter portsrepo.SummaryFilter) ([]domain.DailySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.DailySummary
	for _, summary := range s.summaries {
		if filter.BranchID != nil && summary.BranchID != *filter.BranchID {
			continue
		}
		if filter.From != nil && summary.SummaryDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && summary.SummaryDate.After(*filter.To) {
			continue
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SummaryDate.Equal(out[j].SummaryDate) {
			return out[i].SummaryID > out[j].SummaryID
		}
		return out[i].SummaryDate.After(out[j].SummaryDate)
	})
	if filter.Offset >= len(out) {
		return []domain.DailySummary{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// asStored rounds every amount column on its own, as NUMERIC(14,2) does.
func asStored(summary domain.DailySummary) domain.DailySummary {
	for _, d := range []*decimal.Decimal{
		&summary.GrossSales, &summary.Cash, &summary.Credit, &summary.CreditPayments,
		&summary.Topups, &summary.WireTransfers, &summary.Expenses, &summary.Deposits,
		&summary.CardPayment, &summary.OpeningFund, &summary.DayBalance,
	} {
		*d = d.Round(2)
	}
	return summary
}

func (s *memStore) SaveSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.summaries {
		if existing.BranchID == summary.BranchID && existing.SummaryDate.Equal(summary.SummaryDate) {
			return 0, apperrors.ErrConflict
		}
	}
	summary.SummaryID = s.id()
	s.summaries[summary.SummaryID] = asStored(summary)
	return summary.SummaryID, nil
}

func (s *memStore) UpdateSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.summaries[summary.SummaryID]; !ok {
		return apperrors.ErrNotFound
	}
	s.summaries[summary.SummaryID] = asStored(summary)
	return nil
}

func (s *memStore) DeleteSummary(ctx context.Context, summaryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.summaries[summaryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.summaries, summaryID)
	return nil
}

// --- ChangeHistory repository ---

func (s *memStore) InsertHistoryEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.ChangeHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failHistoryInsert != nil {
		return s.failHistoryInsert
	}
	for _, e := range entries {
		e.HistoryID = s.id()
		s.history = append(s.history, e)
	}
	return nil
}

func (s *memStore) historyOf(summaryID int64) []domain.ChangeHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ChangeHistoryEntry
	for _, e := range s.history {
		if e.SummaryID == summaryID {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) ListHistoryBySummaryID(ctx context.Context, summaryID int64, limit int, nextToken *string) ([]domain.ChangeHistoryEntry, *string, error) {
	entries := s.historyOf(summaryID)
	sort.Slice(entries, func(i, j int) bool { return entries[i].HistoryID > entries[j].HistoryID })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil, nil
}

func (s *memStore) PurgeHistoryBySummaryID(ctx context.Context, summaryID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.history[:0]
	var purged int64
	for _, e := range s.history {
		if e.SummaryID == summaryID {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	s.history = kept
	return purged, nil
}

// --- Source ledgers ---

func (s *memStore) SaveMovement(ctx context.Context, movement domain.Movement) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	movement.MovementID = s.id()
	s.movements = append(s.movements, movement)
	return movement.MovementID, nil
}

func (s *memStore) ListMovementsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMovementList != nil {
		return nil, s.failMovementList
	}
	var out []domain.Movement
	for _, m := range s.movements {
		if m.BranchID == branchID && inWindow(m.MovementDate, start, end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) SaveCardCharge(ctx context.Context, charge domain.CardCharge) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	charge.CardChargeID = s.id()
	s.charges = append(s.charges, charge)
	return charge.CardChargeID, nil
}

func (s *memStore) ListCardChargesByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.CardCharge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CardCharge
	for _, c := range s.charges {
		if c.BranchID == branchID && inWindow(c.ChargeDate, start, end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) SaveBankDeposit(ctx context.Context, deposit domain.BankDeposit) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deposit.BankDepositID = s.id()
	s.deposits = append(s.deposits, deposit)
	return deposit.BankDepositID, nil
}

func (s *memStore) ListBankDepositsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.BankDeposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BankDeposit
	for _, d := range s.deposits {
		if d.BranchID == branchID && inWindow(d.DepositDate, start, end) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memStore) SaveOpeningFund(ctx context.Context, fund domain.OpeningFund) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.funds {
		if f.BranchID == fund.BranchID && f.FundDate.Equal(fund.FundDate) {
			return 0, apperrors.ErrConflict
		}
	}
	fund.OpeningFundID = s.id()
	s.funds = append(s.funds, fund)
	return fund.OpeningFundID, nil
}

func (s *memStore) FindOpeningFund(ctx context.Context, branchID int64, date time.Time) (*domain.OpeningFund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.funds {
		if f.BranchID == branchID && f.FundDate.Equal(date) {
			return &f, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) UpdateOpeningFund(ctx context.Context, fund domain.OpeningFund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.funds {
		if f.OpeningFundID == fund.OpeningFundID {
			s.funds[i] = fund
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memStore) DeleteOpeningFund(ctx context.Context, branchID int64, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.funds {
		if f.BranchID == branchID && f.FundDate.Equal(date) {
			s.funds = append(s.funds[:i], s.funds[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memStore) ListOpeningFundsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.OpeningFund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OpeningFund
	for _, f := range s.funds {
		if f.BranchID == branchID && inWindow(f.FundDate, start, end) {
			out = append(out, f)
		}
	}
	return out, nil
}
