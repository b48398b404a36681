// Package mongostore implements the storage repositories on top of the document store.
package mongostore

import (
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

// NewStorage wires both repositories to conn.
func NewStorage(conn *storage.Connection) *storage.Storage {
	return &storage.Storage{
		Connection:       conn,
		TransactionTypes: NewTransactionTypeRepository(conn),
		Transactions:     NewTransactionRepository(conn),
	}
}
