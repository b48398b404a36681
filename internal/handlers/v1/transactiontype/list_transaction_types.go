package transactiontype

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/logging"
)

type ListTransactionTypesResponseBody struct {
	TransactionTypes []TransactionType `json:"transactionTypes" doc:"Transaction types ordered by id"`
}

type ListTransactionTypesOutput struct {
	Body ListTransactionTypesResponseBody
}

// ListTransactionTypesHandler handles GET /v1/transaction-types.
type ListTransactionTypesHandler struct {
	Store transactionTypeStore
}

func NewListTransactionTypesHandler(s transactionTypeStore) *ListTransactionTypesHandler {
	return &ListTransactionTypesHandler{Store: s}
}

// Register registers the list transaction types endpoint with the Huma API.
func (h *ListTransactionTypesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transaction-types",
		Method:      http.MethodGet,
		Path:        "/v1/transaction-types",
		Summary:     "List transaction types",
		Description: "Returns every transaction type held in memory.",
		Tags:        []string{"Transaction Types"},
	}, h.handle)
}

func (h *ListTransactionTypesHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionTypesOutput, error) {
	transactionTypes := h.Store.TransactionTypes()

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionTypeCount", len(transactionTypes))
	}

	resp := ListTransactionTypesResponseBody{
		TransactionTypes: make([]TransactionType, len(transactionTypes)),
	}
	for i, tt := range transactionTypes {
		resp.TransactionTypes[i] = toResponse(tt)
	}
	return &ListTransactionTypesOutput{Body: resp}, nil
}
