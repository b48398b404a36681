package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

type SetTransactionsBody struct {
	Transactions []CreateTransactionBody `json:"transactions" doc:"Complete new set of transactions"`
}

type SetTransactionsInput struct {
	Body SetTransactionsBody
}

type SetTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// SetTransactionsHandler handles PUT /v1/transactions, replacing every transaction held in memory.
// Each entry is written with an upsert; transactions left out stay in the database.
type SetTransactionsHandler struct {
	Store transactionStore
}

func NewSetTransactionsHandler(s transactionStore) *SetTransactionsHandler {
	return &SetTransactionsHandler{Store: s}
}

func (h *SetTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-transactions",
		Method:      http.MethodPut,
		Path:        "/v1/transactions",
		Summary:     "Replace transactions",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SetTransactionsHandler) handle(ctx context.Context, input *SetTransactionsInput) (*SetTransactionsOutput, error) {
	seen := make(map[string]bool, len(input.Body.Transactions))
	transactions := make([]model.Transaction, 0, len(input.Body.Transactions))
	for _, body := range input.Body.Transactions {
		id := body.ID
		if id == "" {
			generated, err := newTransactionID()
			if err != nil {
				return nil, err
			}
			id = generated
		}
		if seen[id] {
			return nil, huma.NewError(http.StatusBadRequest, "duplicate transaction id "+id)
		}
		seen[id] = true

		tt, ok := h.Store.TransactionType(body.TransactionTypeID)
		if !ok {
			return nil, huma.NewError(http.StatusBadRequest, "unknown transactionTypeID "+body.TransactionTypeID)
		}
		tx, err := parseTransaction(id, tt, body.Amount, body.Description, body.Date)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	if err := h.Store.Dispatch(ctx, store.SetTransactions{Transactions: transactions}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to replace transactions", err)
	}

	stored := h.Store.Transactions()
	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(stored))}
	for i, tx := range stored {
		resp.Transactions[i] = toResponse(tx)
	}
	return &SetTransactionsOutput{Body: resp}, nil
}
