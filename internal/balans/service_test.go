package balans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

type stubIncomes struct {
	entries []ledger.IncomeEntry
	err     error
}

func (s stubIncomes) List(ctx context.Context) ([]ledger.IncomeEntry, error) {
	return s.entries, s.err
}

type stubExpenses struct {
	entries []ledger.ExpenseEntry
	err     error
}

func (s stubExpenses) List(ctx context.Context) ([]ledger.ExpenseEntry, error) {
	return s.entries, s.err
}

func TestSummaryComposesBothLedgers(t *testing.T) {
	incomes := stubIncomes{entries: []ledger.IncomeEntry{
		{TotalOwed: 300000, Paid: ledger.PaidBreakdown{Total: 200000}, Remaining: 100000},
	}}
	expenses := stubExpenses{entries: []ledger.ExpenseEntry{
		{TotalBilled: 160000, Paid: 120000, RemainingDebt: 40000},
	}}

	svc := NewService(incomes, expenses)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Equal(t, 80000.0, summary.NetIncome)
	require.Equal(t, 100000.0, summary.Receivables)
	require.Equal(t, 40000.0, summary.Payables)
	require.Equal(t, 60000.0, summary.NetPosition)
	require.Equal(t, 67, summary.CollectionRate)
	require.Equal(t, 75, summary.PaymentRate)
	require.Equal(t, 40, summary.ProfitMargin)
}

func TestSummaryEmptyLedgers(t *testing.T) {
	svc := NewService(stubIncomes{}, stubExpenses{})
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, ledger.BalanceSummary{}, summary)
}

func TestSummaryPropagatesErrors(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(stubIncomes{err: boom}, stubExpenses{})
	_, err := svc.Summary(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSnapshotStore(client, time.Minute)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSnapshot)

	snap := Snapshot{
		Summary:    ledger.Compose(ledger.IncomeTotals{TotalOwed: 100, PaidTotal: 60}, ledger.ExpenseTotals{}),
		CapturedAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), snap))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, snap.Summary, loaded.Summary)
	require.True(t, snap.CapturedAt.Equal(loaded.CapturedAt))
}

func TestSnapshotExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSnapshotStore(client, time.Minute)

	require.NoError(t, store.Save(context.Background(), Snapshot{CapturedAt: time.Now()}))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSnapshot)
}
