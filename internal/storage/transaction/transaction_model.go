package transaction

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

// Collection is the document collection holding transactions.
const Collection = "transactions"

// Metric selects what Aggregate sums per transaction type.
type Metric string

const (
	// MetricCount counts transactions per type.
	MetricCount Metric = "count"
	// MetricAmount sums transaction amounts per type.
	MetricAmount Metric = "amount"
)

func (m Metric) Valid() bool {
	return m == MetricCount || m == MetricAmount
}

// AggregateQuery groups transactions whose type has the given credit flag.
type AggregateQuery struct {
	Credit bool
	Metric Metric
}

// ITransactionRepository persists transactions keyed by their external id.
//
//go:generate mockery --name ITransactionRepository --inpackage --with-expecter
type ITransactionRepository interface {
	Add(ctx context.Context, transaction model.Transaction) error
	GetAll(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id string) (model.Transaction, error)
	Update(ctx context.Context, transaction model.Transaction) error
	Remove(ctx context.Context, id string) error
	Upsert(ctx context.Context, transaction model.Transaction) error
	Aggregate(ctx context.Context, query AggregateQuery) ([]model.ChartRecord, error)
}
