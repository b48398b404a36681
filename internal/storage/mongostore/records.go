package mongostore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

const (
	transactionTypeIDField = "transactionType_id"
	transactionIDField     = "transaction_id"
)

// transactionTypeRecord is the stored shape of a transaction type. Fields the record does not name are
// ignored on read.
type transactionTypeRecord struct {
	TransactionTypeID *string `bson:"transactionType_id,omitempty"`
	Description       string  `bson:"description"`
	IsCredit          bool    `bson:"isCredit"`
}

func transactionTypeToRecord(tt model.TransactionType) transactionTypeRecord {
	id := tt.ID()
	return transactionTypeRecord{
		TransactionTypeID: &id,
		Description:       tt.Description(),
		IsCredit:          tt.IsCredit(),
	}
}

// recordToTransactionType refuses records without an external id rather than inventing one.
func recordToTransactionType(rec transactionTypeRecord) (model.TransactionType, error) {
	if rec.TransactionTypeID == nil {
		return model.TransactionType{}, fmt.Errorf("%w: %s", storage.ErrMissingField, transactionTypeIDField)
	}
	return model.NewTransactionType(*rec.TransactionTypeID, rec.Description, rec.IsCredit), nil
}

type transactionRecord struct {
	TransactionID     *string              `bson:"transaction_id,omitempty"`
	TransactionTypeID *string              `bson:"transactionType_id,omitempty"`
	Amount            primitive.Decimal128 `bson:"amount"`
	Description       string               `bson:"description"`
	Date              time.Time            `bson:"date"`

	// Type is only filled by the $lookup stage on read.
	Type []transactionTypeRecord `bson:"type,omitempty"`
}

func transactionToRecord(tx model.Transaction) (transactionRecord, error) {
	amount, err := primitive.ParseDecimal128(tx.Amount.String())
	if err != nil {
		return transactionRecord{}, fmt.Errorf("converting amount %s: %w", tx.Amount, err)
	}
	id := tx.ID
	typeID := tx.TransactionType().ID()
	return transactionRecord{
		TransactionID:     &id,
		TransactionTypeID: &typeID,
		Amount:            amount,
		Description:       tx.Description,
		Date:              tx.Date.UTC(),
	}, nil
}

// recordToTransaction resolves the referenced type from the joined documents. A reference to a type
// that no longer exists yields a type carrying only its id.
func recordToTransaction(rec transactionRecord) (model.Transaction, error) {
	if rec.TransactionID == nil {
		return model.Transaction{}, fmt.Errorf("%w: %s", storage.ErrMissingField, transactionIDField)
	}
	if rec.TransactionTypeID == nil {
		return model.Transaction{}, fmt.Errorf("%w: %s", storage.ErrMissingField, transactionTypeIDField)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount of %s: %w", *rec.TransactionID, err)
	}

	tt := model.NewTransactionType(*rec.TransactionTypeID, "")
	if len(rec.Type) > 0 {
		if joined, err := recordToTransactionType(rec.Type[0]); err == nil {
			tt = joined
		}
	}

	return model.NewTransaction(*rec.TransactionID, tt, amount, rec.Description).WithDate(rec.Date.UTC()), nil
}
