//go:build integration

package mongostore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
)

func newIntegrationStorage(t *testing.T) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	conn := storage.NewConnection(storage.ConnectionConfig{URI: uri, Database: "budget_test"}, logrus.New())
	t.Cleanup(func() { _ = conn.Disconnect(context.Background()) })

	_, err = Migrate(ctx, conn, logrus.New())
	require.NoError(t, err)
	return NewStorage(conn)
}

func TestIntegration_TransactionTypes(t *testing.T) {
	s := newIntegrationStorage(t)
	ctx := context.Background()

	require.NoError(t, s.TransactionTypes.Add(ctx, model.NewTransactionType("B", "Bonus", true)))
	require.NoError(t, s.TransactionTypes.Add(ctx, model.NewTransactionType("A", "Salary", true)))

	err := s.TransactionTypes.Add(ctx, model.NewTransactionType("A", "Again"))
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	all, err := s.TransactionTypes.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].ID())
	assert.Equal(t, "Salary", all[0].Description())

	updated := model.NewTransactionType("A", "Monthly salary", true)
	require.NoError(t, s.TransactionTypes.Update(ctx, updated))
	got, err := s.TransactionTypes.Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, s.TransactionTypes.Remove(ctx, "B"))
	_, err = s.TransactionTypes.Get(ctx, "B")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.TransactionTypes.Upsert(ctx, model.NewTransactionType("A", "Salary", true)))
	require.NoError(t, s.TransactionTypes.Upsert(ctx, model.NewTransactionType("C", "Gift", true)))
	all, err = s.TransactionTypes.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIntegration_TransactionsAndAggregate(t *testing.T) {
	s := newIntegrationStorage(t)
	ctx := context.Background()

	salary := model.NewTransactionType("salary", "Salary", true)
	rent := model.NewTransactionType("rent", "Rent")
	food := model.NewTransactionType("food", "Food")
	for _, tt := range []model.TransactionType{salary, rent, food} {
		require.NoError(t, s.TransactionTypes.Add(ctx, tt))
	}

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		model.NewTransaction("t1", salary, decimal.RequireFromString("1500"), "June").WithDate(day),
		model.NewTransaction("t2", rent, decimal.RequireFromString("-700.50"), "June rent").WithDate(day.Add(time.Hour)),
		model.NewTransaction("t3", food, decimal.RequireFromString("-20.25"), "Lunch").WithDate(day.Add(2 * time.Hour)),
		model.NewTransaction("t4", food, decimal.RequireFromString("-30.25"), "Dinner").WithDate(day.Add(3 * time.Hour)),
	}
	for _, tx := range txs {
		require.NoError(t, s.Transactions.Add(ctx, tx))
	}

	all, err := s.Transactions.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, salary, all[0].TransactionType())
	assert.True(t, all[1].Amount.Equal(decimal.RequireFromString("-700.5")))

	counts, err := s.Transactions.Aggregate(ctx, transaction.AggregateQuery{Credit: false, Metric: transaction.MetricCount})
	require.NoError(t, err)
	assert.Equal(t, []model.ChartRecord{{ID: "food", Count: 2}, {ID: "rent", Count: 1}}, counts)

	amounts, err := s.Transactions.Aggregate(ctx, transaction.AggregateQuery{Credit: true, Metric: transaction.MetricAmount})
	require.NoError(t, err)
	assert.Equal(t, []model.ChartRecord{{ID: "salary", Count: 1500}}, amounts)

	require.NoError(t, s.TransactionTypes.Remove(ctx, "rent"))
	got, err := s.Transactions.Get(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "rent", got.TransactionType().ID(), "no cascade on type removal")

	require.NoError(t, s.Transactions.Remove(ctx, "t2"))
	_, err = s.Transactions.Get(ctx, "t2")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
