package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/store"
)

type RemoveTransactionInput struct {
	ID string `path:"id" doc:"External id of the transaction"`
}

// RemoveTransactionHandler handles DELETE /v1/transactions/{id}.
type RemoveTransactionHandler struct {
	Store transactionStore
}

func NewRemoveTransactionHandler(s transactionStore) *RemoveTransactionHandler {
	return &RemoveTransactionHandler{Store: s}
}

func (h *RemoveTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "remove-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Remove transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *RemoveTransactionHandler) handle(ctx context.Context, input *RemoveTransactionInput) (*struct{}, error) {
	if _, ok := h.Store.Transaction(input.ID); !ok {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	if err := h.Store.Dispatch(ctx, store.RemoveTransaction{ID: input.ID}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to remove transaction", err)
	}
	return nil, nil
}
