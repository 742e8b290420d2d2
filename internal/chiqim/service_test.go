package chiqim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hisobchi/hisobchi/internal/ledger"
	"github.com/hisobchi/hisobchi/internal/shared"
)

var testBranches = []string{"Zarkent Filiali", "Nabrejniy filiali"}

type memoryChiqimRepo struct {
	entries map[int64]ledger.ExpenseEntry
	nextID  int64
}

func newMemoryChiqimRepo() *memoryChiqimRepo {
	return &memoryChiqimRepo{entries: make(map[int64]ledger.ExpenseEntry)}
}

func (r *memoryChiqimRepo) List(ctx context.Context) ([]ledger.ExpenseEntry, error) {
	out := make([]ledger.ExpenseEntry, 0, len(r.entries))
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.entries[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryChiqimRepo) Get(ctx context.Context, id int64) (*ledger.ExpenseEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &e, nil
}

func (r *memoryChiqimRepo) Create(ctx context.Context, entry ledger.ExpenseEntry) (*ledger.ExpenseEntry, error) {
	r.nextID++
	entry.ID = r.nextID
	r.entries[entry.ID] = entry
	return &entry, nil
}

func (r *memoryChiqimRepo) Update(ctx context.Context, entry ledger.ExpenseEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return shared.ErrNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *memoryChiqimRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func newTestService(repo RepositoryPort) *Service {
	svc := NewService(repo, testBranches)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateDerivesColumns(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	entry, err := svc.Create(context.Background(), CreateInput{
		Payee:            "Ijara to'lovi",
		Category:         "Ijara",
		Branch:           "Zarkent Filiali",
		PriorMonthsCarry: 100000,
		MonthlyBilled:    50000,
		Paid:             120000,
	})
	require.NoError(t, err)
	require.Equal(t, 150000.0, entry.TotalBilled)
	require.Equal(t, 30000.0, entry.RemainingDebt)
	require.Equal(t, 0.0, entry.RemainingAdvance)
}

func TestCreateOverpaymentYieldsAdvance(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	entry, err := svc.Create(context.Background(), CreateInput{
		Payee:         "Kommunal",
		Category:      "Kommunal xizmatlar",
		MonthlyBilled: 80000,
		Paid:          100000,
	})
	require.NoError(t, err)
	require.Equal(t, 80000.0, entry.TotalBilled)
	require.Equal(t, 0.0, entry.RemainingDebt)
	require.Equal(t, 20000.0, entry.RemainingAdvance)
}

func TestCreateDefaultsDateAndBranch(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	entry, err := svc.Create(context.Background(), CreateInput{Payee: "Kommunal", Category: "Kommunal xizmatlar"})
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", entry.Date)
	require.Equal(t, "Zarkent Filiali", entry.Branch)
}

func TestCreateRejectsUnknownBranch(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	_, err := svc.Create(context.Background(), CreateInput{Payee: "Kommunal", Category: "Kommunal xizmatlar", Branch: "Toshkent"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsMissingPayee(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	_, err := svc.Create(context.Background(), CreateInput{Category: "Ijara", MonthlyBilled: 100})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsMissingCategory(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	_, err := svc.Create(context.Background(), CreateInput{Payee: "Kommunal", MonthlyBilled: 100})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRederivesOnPaidOnlyPatch(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		Payee:            "Ijara to'lovi",
		Category:         "Ijara",
		PriorMonthsCarry: 100000,
		MonthlyBilled:    50000,
		Paid:             120000,
	})
	require.NoError(t, err)
	require.Equal(t, 30000.0, created.RemainingDebt)

	paid := 180000.0
	updated, err := svc.Update(context.Background(), created.ID, Patch{Paid: &paid})
	require.NoError(t, err)
	require.Equal(t, 150000.0, updated.TotalBilled)
	require.Equal(t, 0.0, updated.RemainingDebt)
	require.Equal(t, 30000.0, updated.RemainingAdvance)
}

func TestUpdateMergesUntouchedFields(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		Payee:    "Ijara to'lovi",
		Category: "Ijara",
		Paid:     50000,
	})
	require.NoError(t, err)

	monthly := 200000.0
	updated, err := svc.Update(context.Background(), created.ID, Patch{MonthlyBilled: &monthly})
	require.NoError(t, err)
	require.Equal(t, "Ijara to'lovi", updated.Payee)
	require.Equal(t, "Ijara", updated.Category)
	require.Equal(t, 200000.0, updated.TotalBilled)
	require.Equal(t, 150000.0, updated.RemainingDebt)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	paid := 10.0
	_, err := svc.Update(context.Background(), 99, Patch{Paid: &paid})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())
	created, err := svc.Create(context.Background(), CreateInput{Payee: "Kommunal", Category: "Kommunal xizmatlar"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), shared.ErrNotFound)
}

func TestListAppliesFilter(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	_, err := svc.Create(context.Background(), CreateInput{Payee: "Aziz", Category: "Oylik maosh", Paid: 100})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{Payee: "Vali", Category: "Ijara", Branch: "Nabrejniy filiali"})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), ledger.Filter{Query: "AZ"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Aziz", got[0].Payee)

	got, err = svc.List(context.Background(), ledger.Filter{Branch: "Nabrejniy filiali"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Vali", got[0].Payee)
}

func TestTotals(t *testing.T) {
	svc := newTestService(newMemoryChiqimRepo())

	_, err := svc.Create(context.Background(), CreateInput{Payee: "A", Category: "Ijara", PriorMonthsCarry: 100000, MonthlyBilled: 50000, Paid: 120000})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{Payee: "B", Category: "Kommunal xizmatlar", MonthlyBilled: 80000, Paid: 100000})
	require.NoError(t, err)

	totals, err := svc.Totals(context.Background(), ledger.Filter{})
	require.NoError(t, err)
	require.Equal(t, 100000.0, totals.PriorCarry)
	require.Equal(t, 130000.0, totals.MonthlyBilled)
	require.Equal(t, 230000.0, totals.TotalBilled)
	require.Equal(t, 220000.0, totals.Paid)
	require.Equal(t, 30000.0, totals.RemainingDebt)
	require.Equal(t, 20000.0, totals.RemainingAdvance)
}
