package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transactiontype"
)

var _ transactiontype.ITransactionTypeRepository = (*TransactionTypeRepository)(nil)

type TransactionTypeRepository struct {
	conn *storage.Connection
}

func NewTransactionTypeRepository(conn *storage.Connection) *TransactionTypeRepository {
	return &TransactionTypeRepository{conn: conn}
}

func (r *TransactionTypeRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Handle(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(transactiontype.Collection), nil
}

// Add inserts a new record. An existing id is reported as storage.ErrDuplicate.
func (r *TransactionTypeRepository) Add(ctx context.Context, tt model.TransactionType) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, transactionTypeToRecord(tt)); err != nil {
		return storage.Wrap("insert", transactiontype.Collection, duplicateOr(err))
	}
	return nil
}

// GetAll returns every stored type ordered by id.
func (r *TransactionTypeRepository) GetAll(ctx context.Context) ([]model.TransactionType, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: transactionTypeIDField, Value: 1}}))
	if err != nil {
		return nil, storage.Wrap("find", transactiontype.Collection, err)
	}
	var records []transactionTypeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, storage.Wrap("find", transactiontype.Collection, err)
	}

	result := make([]model.TransactionType, 0, len(records))
	for _, rec := range records {
		tt, err := recordToTransactionType(rec)
		if err != nil {
			return nil, storage.Wrap("decode", transactiontype.Collection, err)
		}
		result = append(result, tt)
	}
	return result, nil
}

func (r *TransactionTypeRepository) Get(ctx context.Context, id string) (model.TransactionType, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return model.TransactionType{}, err
	}

	var rec transactionTypeRecord
	err = coll.FindOne(ctx, bson.D{{Key: transactionTypeIDField, Value: id}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.TransactionType{}, storage.Wrap("find", transactiontype.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, id))
	}
	if err != nil {
		return model.TransactionType{}, storage.Wrap("find", transactiontype.Collection, err)
	}

	tt, err := recordToTransactionType(rec)
	if err != nil {
		return model.TransactionType{}, storage.Wrap("decode", transactiontype.Collection, err)
	}
	return tt, nil
}

// Update replaces description and credit flag of the record with the same id.
func (r *TransactionTypeRepository) Update(ctx context.Context, tt model.TransactionType) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: transactionTypeIDField, Value: tt.ID()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "description", Value: tt.Description()},
			{Key: "isCredit", Value: tt.IsCredit()},
		}}},
	)
	if err != nil {
		return storage.Wrap("update", transactiontype.Collection, err)
	}
	if res.MatchedCount == 0 {
		return storage.Wrap("update", transactiontype.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, tt.ID()))
	}
	return nil
}

func (r *TransactionTypeRepository) Remove(ctx context.Context, id string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: transactionTypeIDField, Value: id}})
	if err != nil {
		return storage.Wrap("delete", transactiontype.Collection, err)
	}
	if res.DeletedCount == 0 {
		return storage.Wrap("delete", transactiontype.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, id))
	}
	return nil
}

// Upsert writes the record whether or not the id already exists.
func (r *TransactionTypeRepository) Upsert(ctx context.Context, tt model.TransactionType) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.ReplaceOne(ctx,
		bson.D{{Key: transactionTypeIDField, Value: tt.ID()}},
		transactionTypeToRecord(tt),
		options.Replace().SetUpsert(true),
	)
	return storage.Wrap("upsert", transactiontype.Collection, err)
}

func duplicateOr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
	}
	return err
}
