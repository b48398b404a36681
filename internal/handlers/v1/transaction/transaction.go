package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

// TransactionType is the type a transaction references, as embedded in responses.
type TransactionType struct {
	ID          string `json:"id" doc:"External id of the transaction type"`
	Description string `json:"description" doc:"Display description"`
	IsCredit    bool   `json:"isCredit" doc:"True for incomes"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string          `json:"id" doc:"External id of the transaction"`
	TransactionType TransactionType `json:"transactionType" doc:"Referenced transaction type"`
	Amount          string          `json:"amount" doc:"Decimal amount"`
	Description     string          `json:"description" doc:"Free text description"`
	Date            string          `json:"date" doc:"RFC3339 transaction date"`
}

func toResponse(tx model.Transaction) Transaction {
	tt := tx.TransactionType()
	return Transaction{
		ID: tx.ID,
		TransactionType: TransactionType{
			ID:          tt.ID(),
			Description: tt.Description(),
			IsCredit:    tt.IsCredit(),
		},
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
	}
}

// transactionStore is the part of the domain store the transaction handlers use.
type transactionStore interface {
	Transactions() []model.Transaction
	Transaction(id string) (model.Transaction, bool)
	TransactionType(id string) (model.TransactionType, bool)
	Dispatch(ctx context.Context, action store.Action) error
}
