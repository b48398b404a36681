package transactiontype

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

// Collection is the document collection holding transaction types.
const Collection = "transaction_types"

// ITransactionTypeRepository persists transaction types keyed by their external id.
//
//go:generate mockery --name ITransactionTypeRepository --inpackage --with-expecter
type ITransactionTypeRepository interface {
	Add(ctx context.Context, transactionType model.TransactionType) error
	GetAll(ctx context.Context) ([]model.TransactionType, error)
	Get(ctx context.Context, id string) (model.TransactionType, error)
	Update(ctx context.Context, transactionType model.TransactionType) error
	Remove(ctx context.Context, id string) error
	Upsert(ctx context.Context, transactionType model.TransactionType) error
}
