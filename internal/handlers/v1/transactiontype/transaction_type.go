package transactiontype

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

// TransactionType is the API model for a transaction type.
type TransactionType struct {
	ID          string `json:"id" doc:"External id of the transaction type"`
	Description string `json:"description" doc:"Display description"`
	IsCredit    bool   `json:"isCredit" doc:"True for incomes, false for outcomes"`
}

func toResponse(tt model.TransactionType) TransactionType {
	return TransactionType{
		ID:          tt.ID(),
		Description: tt.Description(),
		IsCredit:    tt.IsCredit(),
	}
}

// transactionTypeStore is the part of the domain store the transaction type handlers use.
type transactionTypeStore interface {
	TransactionTypes() []model.TransactionType
	TransactionType(id string) (model.TransactionType, bool)
	Dispatch(ctx context.Context, action store.Action) error
}
