package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
	"github.com/carson-networks/budget-dashboard/internal/storage/transactiontype"
)

var _ transaction.ITransactionRepository = (*TransactionRepository)(nil)

type TransactionRepository struct {
	conn *storage.Connection
}

func NewTransactionRepository(conn *storage.Connection) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

func (r *TransactionRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Handle(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(transaction.Collection), nil
}

func (r *TransactionRepository) Add(ctx context.Context, tx model.Transaction) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	rec, err := transactionToRecord(tx)
	if err != nil {
		return storage.Wrap("insert", transaction.Collection, err)
	}
	if _, err := coll.InsertOne(ctx, rec); err != nil {
		return storage.Wrap("insert", transaction.Collection, duplicateOr(err))
	}
	return nil
}

// GetAll returns every transaction ordered by date then id, with its type resolved.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]model.Transaction, error) {
	return r.find(ctx, bson.D{})
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (model.Transaction, error) {
	found, err := r.find(ctx, bson.D{{Key: transactionIDField, Value: id}})
	if err != nil {
		return model.Transaction{}, err
	}
	if len(found) == 0 {
		return model.Transaction{}, storage.Wrap("find", transaction.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, id))
	}
	return found[0], nil
}

func (r *TransactionRepository) find(ctx context.Context, match bson.D) ([]model.Transaction, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		lookupTypeStage(),
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: transactionIDField, Value: 1}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storage.Wrap("find", transaction.Collection, err)
	}
	var records []transactionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, storage.Wrap("find", transaction.Collection, err)
	}

	result := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		tx, err := recordToTransaction(rec)
		if err != nil {
			return nil, storage.Wrap("decode", transaction.Collection, err)
		}
		result = append(result, tx)
	}
	return result, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx model.Transaction) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	rec, err := transactionToRecord(tx)
	if err != nil {
		return storage.Wrap("update", transaction.Collection, err)
	}

	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: transactionIDField, Value: tx.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: transactionTypeIDField, Value: rec.TransactionTypeID},
			{Key: "amount", Value: rec.Amount},
			{Key: "description", Value: rec.Description},
			{Key: "date", Value: rec.Date},
		}}},
	)
	if err != nil {
		return storage.Wrap("update", transaction.Collection, err)
	}
	if res.MatchedCount == 0 {
		return storage.Wrap("update", transaction.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, tx.ID))
	}
	return nil
}

func (r *TransactionRepository) Remove(ctx context.Context, id string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: transactionIDField, Value: id}})
	if err != nil {
		return storage.Wrap("delete", transaction.Collection, err)
	}
	if res.DeletedCount == 0 {
		return storage.Wrap("delete", transaction.Collection, fmt.Errorf("%w: %s", storage.ErrNotFound, id))
	}
	return nil
}

func (r *TransactionRepository) Upsert(ctx context.Context, tx model.Transaction) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	rec, err := transactionToRecord(tx)
	if err != nil {
		return storage.Wrap("upsert", transaction.Collection, err)
	}

	_, err = coll.ReplaceOne(ctx,
		bson.D{{Key: transactionIDField, Value: tx.ID}},
		rec,
		options.Replace().SetUpsert(true),
	)
	return storage.Wrap("upsert", transaction.Collection, err)
}

type aggregateRow struct {
	ID    string  `bson:"_id"`
	Count float64 `bson:"count"`
}

// Aggregate groups transactions by type id, keeping only types whose credit flag matches the query.
// Rows come back with the largest value first.
func (r *TransactionRepository) Aggregate(ctx context.Context, query transaction.AggregateQuery) ([]model.ChartRecord, error) {
	if !query.Metric.Valid() {
		return nil, fmt.Errorf("unknown aggregate metric %q", query.Metric)
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, aggregatePipeline(query))
	if err != nil {
		return nil, storage.Wrap("aggregate", transaction.Collection, err)
	}
	var rows []aggregateRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storage.Wrap("aggregate", transaction.Collection, err)
	}

	records := make([]model.ChartRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.ChartRecord{ID: row.ID, Count: row.Count})
	}
	return records, nil
}

func aggregatePipeline(query transaction.AggregateQuery) mongo.Pipeline {
	var accumulate any = 1
	if query.Metric == transaction.MetricAmount {
		accumulate = "$amount"
	}

	return mongo.Pipeline{
		lookupTypeStage(),
		{{Key: "$unwind", Value: "$type"}},
		{{Key: "$match", Value: bson.D{{Key: "type.isCredit", Value: query.Credit}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + transactionTypeIDField},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: accumulate}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$toDouble", Value: "$count"}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func lookupTypeStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: transactiontype.Collection},
		{Key: "localField", Value: transactionTypeIDField},
		{Key: "foreignField", Value: transactionTypeIDField},
		{Key: "as", Value: "type"},
	}}}
}
