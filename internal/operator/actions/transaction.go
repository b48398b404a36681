package actions

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

type AddTransaction struct {
	Transaction model.Transaction
}

func (a *AddTransaction) Perform(ctx context.Context, s *storage.Storage) error {
	return s.Transactions.Add(ctx, a.Transaction)
}

func (a *AddTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransaction, events.ChangeAdded, a.Transaction.ID)}
}

type UpdateTransaction struct {
	Transaction model.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, s *storage.Storage) error {
	return s.Transactions.Update(ctx, a.Transaction)
}

func (a *UpdateTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransaction, events.ChangeUpdated, a.Transaction.ID)}
}

type RemoveTransaction struct {
	ID string
}

func (a *RemoveTransaction) Perform(ctx context.Context, s *storage.Storage) error {
	return s.Transactions.Remove(ctx, a.ID)
}

func (a *RemoveTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransaction, events.ChangeRemoved, a.ID)}
}

type UpsertTransaction struct {
	Transaction model.Transaction
}

func (a *UpsertTransaction) Perform(ctx context.Context, s *storage.Storage) error {
	return s.Transactions.Upsert(ctx, a.Transaction)
}

func (a *UpsertTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.EntityTransaction, events.ChangeSet, a.Transaction.ID)}
}

type LoadTransactions struct {
	Result []model.Transaction
}

func (a *LoadTransactions) Perform(ctx context.Context, s *storage.Storage) error {
	loaded, err := s.Transactions.GetAll(ctx)
	if err != nil {
		return err
	}
	a.Result = loaded
	return nil
}
