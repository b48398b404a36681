package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single recorded movement of money. It always references exactly one TransactionType.
// The sign of Amount is not tied to the type's credit flag.
type Transaction struct {
	ID              string
	transactionType TransactionType
	Amount          decimal.Decimal
	Description     string
	Date            time.Time
}

// NewTransaction creates a Transaction dated at creation time.
func NewTransaction(id string, transactionType TransactionType, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:              id,
		transactionType: transactionType,
		Amount:          amount,
		Description:     description,
		Date:            time.Now().UTC(),
	}
}

// WithDate returns a copy of the transaction with the given date.
func (t Transaction) WithDate(date time.Time) Transaction {
	t.Date = date
	return t
}

// TransactionType returns the referenced type as it was when the transaction was built.
func (t Transaction) TransactionType() TransactionType {
	return t.transactionType
}

func (t Transaction) EntityID() string {
	return t.ID
}
