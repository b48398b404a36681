package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/store"
)

type UpdateTransactionBody struct {
	TransactionTypeID string `json:"transactionTypeID" minLength:"1" doc:"Id of an existing transaction type"`
	Amount            string `json:"amount" doc:"Decimal amount"`
	Description       string `json:"description,omitempty" doc:"Free text description"`
	Date              string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, unchanged when omitted"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"External id of the transaction"`
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	Store transactionStore
}

func NewUpdateTransactionHandler(s transactionStore) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Store: s}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, ok := h.Store.Transaction(input.ID)
	if !ok {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	tt, ok := h.Store.TransactionType(input.Body.TransactionTypeID)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "unknown transactionTypeID")
	}

	tx, err := parseTransaction(input.ID, tt, input.Body.Amount, input.Body.Description, input.Body.Date)
	if err != nil {
		return nil, err
	}
	if input.Body.Date == "" {
		tx = tx.WithDate(existing.Date)
	}

	if err := h.Store.Dispatch(ctx, store.UpdateTransaction{Transaction: tx}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Body: toResponse(tx)}, nil
}
