package storage

import (
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
	"github.com/carson-networks/budget-dashboard/internal/storage/transactiontype"
)

// Storage groups the repositories behind the shared connection.
type Storage struct {
	Connection       *Connection
	TransactionTypes transactiontype.ITransactionTypeRepository
	Transactions     transaction.ITransactionRepository
}
