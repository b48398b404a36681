package transactiontype

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

// UpdateTransactionTypeBody carries the mutable fields of a transaction type.
type UpdateTransactionTypeBody struct {
	Description string `json:"description" doc:"Display description"`
	IsCredit    bool   `json:"isCredit,omitempty" doc:"True for incomes"`
}

type UpdateTransactionTypeInput struct {
	ID   string `path:"id" doc:"External id of the transaction type"`
	Body UpdateTransactionTypeBody
}

type UpdateTransactionTypeOutput struct {
	Body TransactionType
}

// UpdateTransactionTypeHandler handles PUT /v1/transaction-types/{id}.
type UpdateTransactionTypeHandler struct {
	Store transactionTypeStore
}

func NewUpdateTransactionTypeHandler(s transactionTypeStore) *UpdateTransactionTypeHandler {
	return &UpdateTransactionTypeHandler{Store: s}
}

func (h *UpdateTransactionTypeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-type",
		Method:      http.MethodPut,
		Path:        "/v1/transaction-types/{id}",
		Summary:     "Update transaction type",
		Tags:        []string{"Transaction Types"},
	}, h.handle)
}

func (h *UpdateTransactionTypeHandler) handle(ctx context.Context, input *UpdateTransactionTypeInput) (*UpdateTransactionTypeOutput, error) {
	if _, exists := h.Store.TransactionType(input.ID); !exists {
		return nil, huma.NewError(http.StatusNotFound, "transaction type not found")
	}

	tt := model.NewTransactionType(input.ID, input.Body.Description, input.Body.IsCredit)
	if err := h.Store.Dispatch(ctx, store.UpdateTransactionType{TransactionType: tt}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction type", err)
	}

	return &UpdateTransactionTypeOutput{Body: toResponse(tt)}, nil
}
