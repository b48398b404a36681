package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/logging"
)

const defaultLimit = 20

// ListTransactionsInput pages through the transactions in id order.
type ListTransactionsInput struct {
	Position int `query:"position" minimum:"0" doc:"Numeric offset of the first transaction"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

// ListTransactionsCursor points at the next page.
type ListTransactionsCursor struct {
	Position int `json:"position" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Store transactionStore
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(s transactionStore) *ListTransactionsHandler {
	return &ListTransactionsHandler{Store: s}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of the transactions held in memory, ordered by id.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput resolves the page bounds. A zero limit means the default.
func parseListTransactionsInput(input *ListTransactionsInput) (position, limit int) {
	limit = input.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	return input.Position, limit
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	position, limit := parseListTransactionsInput(input)

	transactions := h.Store.Transactions()
	total := len(transactions)
	start := min(position, total)
	end := min(start+limit, total)
	page := transactions[start:end]

	if logData != nil {
		logData.AddData("transactionCount", len(page))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page)),
	}
	for i, tx := range page {
		resp.Transactions[i] = toResponse(tx)
	}

	if end < total {
		resp.NextCursor = &ListTransactionsCursor{
			Position: end,
			Limit:    limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
