package transactiontype

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

type SetTransactionTypesBody struct {
	TransactionTypes []CreateTransactionTypeBody `json:"transactionTypes" doc:"Complete new set of transaction types"`
}

type SetTransactionTypesInput struct {
	Body SetTransactionTypesBody
}

// SetTransactionTypesHandler handles PUT /v1/transaction-types, replacing the whole set. Types left
// out are dropped from memory but stay in the database.
type SetTransactionTypesHandler struct {
	Store transactionTypeStore
}

func NewSetTransactionTypesHandler(s transactionTypeStore) *SetTransactionTypesHandler {
	return &SetTransactionTypesHandler{Store: s}
}

func (h *SetTransactionTypesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-types",
		Method:      http.MethodPut,
		Path:        "/v1/transaction-types",
		Summary:     "Replace transaction types",
		Tags:        []string{"Transaction Types"},
	}, h.handle)
}

func (h *SetTransactionTypesHandler) handle(ctx context.Context, input *SetTransactionTypesInput) (*ListTransactionTypesOutput, error) {
	seen := make(map[string]bool, len(input.Body.TransactionTypes))
	transactionTypes := make([]model.TransactionType, 0, len(input.Body.TransactionTypes))
	for _, body := range input.Body.TransactionTypes {
		if seen[body.ID] {
			return nil, huma.NewError(http.StatusBadRequest, "duplicate transaction type id "+body.ID)
		}
		seen[body.ID] = true
		transactionTypes = append(transactionTypes, model.NewTransactionType(body.ID, body.Description, body.IsCredit))
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionTypeCount", len(transactionTypes))
	}

	if err := h.Store.Dispatch(ctx, store.SetTransactionTypes{TransactionTypes: transactionTypes}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to replace transaction types", err)
	}

	resp := ListTransactionTypesResponseBody{TransactionTypes: make([]TransactionType, 0, len(transactionTypes))}
	for _, tt := range h.Store.TransactionTypes() {
		resp.TransactionTypes = append(resp.TransactionTypes, toResponse(tt))
	}
	return &ListTransactionTypesOutput{Body: resp}, nil
}
