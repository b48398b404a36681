package actions

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

type AddTransactionType struct {
	TransactionType model.TransactionType
}

func (a *AddTransactionType) Perform(ctx context.Context, s *storage.Storage) error {
	return s.TransactionTypes.Add(ctx, a.TransactionType)
}

func (a *AddTransactionType) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransactionType, events.ChangeAdded, a.TransactionType.ID())}
}

type UpdateTransactionType struct {
	TransactionType model.TransactionType
}

func (a *UpdateTransactionType) Perform(ctx context.Context, s *storage.Storage) error {
	return s.TransactionTypes.Update(ctx, a.TransactionType)
}

func (a *UpdateTransactionType) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransactionType, events.ChangeUpdated, a.TransactionType.ID())}
}

type RemoveTransactionType struct {
	ID string
}

func (a *RemoveTransactionType) Perform(ctx context.Context, s *storage.Storage) error {
	return s.TransactionTypes.Remove(ctx, a.ID)
}

func (a *RemoveTransactionType) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransactionType, events.ChangeRemoved, a.ID)}
}

// UpsertTransactionType persists one entry of a bulk set.
type UpsertTransactionType struct {
	TransactionType model.TransactionType
}

func (a *UpsertTransactionType) Perform(ctx context.Context, s *storage.Storage) error {
	return s.TransactionTypes.Upsert(ctx, a.TransactionType)
}

func (a *UpsertTransactionType) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransactionType, events.ChangeSet, a.TransactionType.ID())}
}

// LoadTransactionTypes reads every stored type into Result.
type LoadTransactionTypes struct {
	Result []model.TransactionType
}

func (a *LoadTransactionTypes) Perform(ctx context.Context, s *storage.Storage) error {
	loaded, err := s.TransactionTypes.GetAll(ctx)
	if err != nil {
		return err
	}
	a.Result = loaded
	return nil
}
