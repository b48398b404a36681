package transactiontype

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

// CreateTransactionTypeBody is the request body for creating a transaction type.
type CreateTransactionTypeBody struct {
	ID          string `json:"id" minLength:"1" doc:"External id, unique among transaction types"`
	Description string `json:"description" doc:"Display description"`
	IsCredit    bool   `json:"isCredit,omitempty" doc:"True for incomes, defaults to false"`
}

type CreateTransactionTypeInput struct {
	Body CreateTransactionTypeBody
}

type CreateTransactionTypeOutput struct {
	Status int
	Body   TransactionType
}

// CreateTransactionTypeHandler handles POST /v1/transaction-types.
type CreateTransactionTypeHandler struct {
	Store transactionTypeStore
}

func NewCreateTransactionTypeHandler(s transactionTypeStore) *CreateTransactionTypeHandler {
	return &CreateTransactionTypeHandler{Store: s}
}

// Register registers the create transaction type endpoint with the Huma API.
func (h *CreateTransactionTypeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction-type",
		Method:        http.MethodPost,
		Path:          "/v1/transaction-types",
		Summary:       "Create transaction type",
		Description:   "Adds a transaction type. It is stored in memory at once and written to the database in the background.",
		Tags:          []string{"Transaction Types"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionTypeHandler) handle(ctx context.Context, input *CreateTransactionTypeInput) (*CreateTransactionTypeOutput, error) {
	if _, exists := h.Store.TransactionType(input.Body.ID); exists {
		return nil, huma.NewError(http.StatusConflict, "transaction type already exists")
	}

	tt := model.NewTransactionType(input.Body.ID, input.Body.Description, input.Body.IsCredit)
	// A concurrent create can still win between the check above and Dispatch.
	if err := h.Store.Dispatch(ctx, store.AddTransactionType{TransactionType: tt}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, huma.NewError(http.StatusConflict, "transaction type already exists")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction type", err)
	}

	return &CreateTransactionTypeOutput{Status: http.StatusCreated, Body: toResponse(tt)}, nil
}
