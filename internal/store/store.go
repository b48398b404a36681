package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/operator/actions"
)

// Persister runs persistence actions. Dispatch must return without waiting for the write or for
// queue space.
type Persister interface {
	Dispatch(ctx context.Context, action actions.IAction) error
	Process(ctx context.Context, action actions.IAction) error
}

// Store is the in-memory source of truth for transaction types and transactions. Every mutation is
// applied here first and then handed to the Persister without waiting for it. A failed write is not
// reconciled, so memory and the database can drift apart.
type Store struct {
	mutex     sync.RWMutex
	state     state
	persister Persister
	logger    *logrus.Logger
}

func New(persister Persister, logger *logrus.Logger) *Store {
	return &Store{
		state: state{
			transactionTypes: NewCollection[model.TransactionType](),
			transactions:     NewCollection[model.Transaction](),
		},
		persister: persister,
		logger:    logger,
	}
}

// Dispatch applies action and queues the writes it produces, in state order, without waiting for them.
// An action that is refused, such as an add for an id already held, leaves the state untouched and
// queues nothing. Otherwise the state change has already happened when Dispatch returns; a returned
// error only reports the writes that could not be queued. Every write is still attempted, so one
// failed enqueue in a bulk set does not skip the rest.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	writes, err := action.apply(&s.state)
	if err != nil {
		return err
	}

	var errs []error
	for _, write := range writes {
		if err := s.persister.Dispatch(ctx, write); err != nil {
			s.logger.WithError(err).WithField("action", fmt.Sprintf("%T", write)).Error("Store.Dispatch.enqueue failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Hydrate loads the persisted records into memory.
func (s *Store) Hydrate(ctx context.Context) error {
	loadTypes := &actions.LoadTransactionTypes{}
	if err := s.persister.Process(ctx, loadTypes); err != nil {
		return fmt.Errorf("loading transaction types: %w", err)
	}
	loadTransactions := &actions.LoadTransactions{}
	if err := s.persister.Process(ctx, loadTransactions); err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	if err := s.Dispatch(ctx, HydrateTransactionTypes{TransactionTypes: loadTypes.Result}); err != nil {
		return err
	}
	if err := s.Dispatch(ctx, HydrateTransactions{Transactions: loadTransactions.Result}); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"transactionTypes": len(loadTypes.Result),
		"transactions":     len(loadTransactions.Result),
	}).Info("Store.Hydrate.loaded")
	return nil
}

func (s *Store) TransactionTypes() []model.TransactionType {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.transactionTypes.All()
}

func (s *Store) TransactionType(id string) (model.TransactionType, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.transactionTypes.Get(id)
}

func (s *Store) Transactions() []model.Transaction {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.transactions.All()
}

func (s *Store) Transaction(id string) (model.Transaction, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.transactions.Get(id)
}
