package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	ID                string `json:"id,omitempty" doc:"External id, generated when omitted"`
	TransactionTypeID string `json:"transactionTypeID" minLength:"1" doc:"Id of an existing transaction type"`
	Amount            string `json:"amount" doc:"Decimal amount"`
	Description       string `json:"description,omitempty" doc:"Free text description"`
	Date              string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Store transactionStore
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(s transactionStore) *CreateTransactionHandler {
	return &CreateTransactionHandler{Store: s}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction against an existing transaction type.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseTransaction builds a transaction from request fields. An empty date keeps the creation time.
func parseTransaction(id string, tt model.TransactionType, amount, description, date string) (model.Transaction, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	tx := model.NewTransaction(id, tt, parsedAmount, description)
	if date != "" {
		parsedDate, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return model.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		tx = tx.WithDate(parsedDate.UTC())
	}
	return tx, nil
}

func newTransactionID() (string, error) {
	generated, err := uuid.NewV4()
	if err != nil {
		return "", huma.NewError(http.StatusInternalServerError, "failed to generate id", err)
	}
	return generated.String(), nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	id := input.Body.ID
	if id == "" {
		generated, err := newTransactionID()
		if err != nil {
			return nil, err
		}
		id = generated
	} else if _, exists := h.Store.Transaction(id); exists {
		return nil, huma.NewError(http.StatusConflict, "transaction already exists")
	}

	tt, ok := h.Store.TransactionType(input.Body.TransactionTypeID)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "unknown transactionTypeID")
	}

	tx, err := parseTransaction(id, tt, input.Body.Amount, input.Body.Description, input.Body.Date)
	if err != nil {
		return nil, err
	}

	if err := h.Store.Dispatch(ctx, store.AddTransaction{Transaction: tx}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, huma.NewError(http.StatusConflict, "transaction already exists")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: toResponse(tx)}, nil
}
