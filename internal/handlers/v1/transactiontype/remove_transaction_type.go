package transactiontype

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/store"
)

type RemoveTransactionTypeInput struct {
	ID string `path:"id" doc:"External id of the transaction type"`
}

// RemoveTransactionTypeHandler handles DELETE /v1/transaction-types/{id}. Transactions referencing
// the type are left as they are.
type RemoveTransactionTypeHandler struct {
	Store transactionTypeStore
}

func NewRemoveTransactionTypeHandler(s transactionTypeStore) *RemoveTransactionTypeHandler {
	return &RemoveTransactionTypeHandler{Store: s}
}

func (h *RemoveTransactionTypeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "remove-transaction-type",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction-types/{id}",
		Summary:       "Remove transaction type",
		Tags:          []string{"Transaction Types"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *RemoveTransactionTypeHandler) handle(ctx context.Context, input *RemoveTransactionTypeInput) (*struct{}, error) {
	if _, exists := h.Store.TransactionType(input.ID); !exists {
		return nil, huma.NewError(http.StatusNotFound, "transaction type not found")
	}

	if err := h.Store.Dispatch(ctx, store.RemoveTransactionType{ID: input.ID}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to remove transaction type", err)
	}
	return nil, nil
}
