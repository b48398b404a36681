package store

import (
	"errors"
	"fmt"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/operator/actions"
)

// ErrDuplicate is returned by Store.Dispatch when an add names an id the store already holds.
var ErrDuplicate = errors.New("store: duplicate id")

// Action changes the in-memory state and names the writes that follow it.
type Action interface {
	apply(s *state) ([]actions.IAction, error)
}

type state struct {
	transactionTypes *Collection[model.TransactionType]
	transactions     *Collection[model.Transaction]
}

type AddTransactionType struct {
	TransactionType model.TransactionType
}

func (a AddTransactionType) apply(s *state) ([]actions.IAction, error) {
	if !s.transactionTypes.AddOne(a.TransactionType) {
		return nil, fmt.Errorf("%w: transaction type %s", ErrDuplicate, a.TransactionType.ID())
	}
	return []actions.IAction{&actions.AddTransactionType{TransactionType: a.TransactionType}}, nil
}

type RemoveTransactionType struct {
	ID string
}

func (a RemoveTransactionType) apply(s *state) ([]actions.IAction, error) {
	s.transactionTypes.RemoveOne(a.ID)
	return []actions.IAction{&actions.RemoveTransactionType{ID: a.ID}}, nil
}

type UpdateTransactionType struct {
	TransactionType model.TransactionType
}

func (a UpdateTransactionType) apply(s *state) ([]actions.IAction, error) {
	s.transactionTypes.UpdateOne(a.TransactionType)
	return []actions.IAction{&actions.UpdateTransactionType{TransactionType: a.TransactionType}}, nil
}

// SetTransactionTypes replaces the state and writes every entry. The state is replaced even when some
// of the writes cannot be queued; those are reported by Dispatch and the operator's failure hook.
type SetTransactionTypes struct {
	TransactionTypes []model.TransactionType
}

func (a SetTransactionTypes) apply(s *state) ([]actions.IAction, error) {
	s.transactionTypes.SetAll(a.TransactionTypes)
	writes := make([]actions.IAction, 0, len(a.TransactionTypes))
	for _, tt := range a.TransactionTypes {
		writes = append(writes, &actions.UpsertTransactionType{TransactionType: tt})
	}
	return writes, nil
}

// HydrateTransactionTypes replaces the state with records already persisted. Nothing is written.
type HydrateTransactionTypes struct {
	TransactionTypes []model.TransactionType
}

func (a HydrateTransactionTypes) apply(s *state) ([]actions.IAction, error) {
	s.transactionTypes.SetAll(a.TransactionTypes)
	return nil, nil
}

type AddTransaction struct {
	Transaction model.Transaction
}

func (a AddTransaction) apply(s *state) ([]actions.IAction, error) {
	if !s.transactions.AddOne(a.Transaction) {
		return nil, fmt.Errorf("%w: transaction %s", ErrDuplicate, a.Transaction.ID)
	}
	return []actions.IAction{&actions.AddTransaction{Transaction: a.Transaction}}, nil
}

type RemoveTransaction struct {
	ID string
}

func (a RemoveTransaction) apply(s *state) ([]actions.IAction, error) {
	s.transactions.RemoveOne(a.ID)
	return []actions.IAction{&actions.RemoveTransaction{ID: a.ID}}, nil
}

type UpdateTransaction struct {
	Transaction model.Transaction
}

func (a UpdateTransaction) apply(s *state) ([]actions.IAction, error) {
	s.transactions.UpdateOne(a.Transaction)
	return []actions.IAction{&actions.UpdateTransaction{Transaction: a.Transaction}}, nil
}

// SetTransactions is SetTransactionTypes for transactions, with the same partial-queueing behaviour.
type SetTransactions struct {
	Transactions []model.Transaction
}

func (a SetTransactions) apply(s *state) ([]actions.IAction, error) {
	s.transactions.SetAll(a.Transactions)
	writes := make([]actions.IAction, 0, len(a.Transactions))
	for _, tx := range a.Transactions {
		writes = append(writes, &actions.UpsertTransaction{Transaction: tx})
	}
	return writes, nil
}

type HydrateTransactions struct {
	Transactions []model.Transaction
}

func (a HydrateTransactions) apply(s *state) ([]actions.IAction, error) {
	s.transactions.SetAll(a.Transactions)
	return nil, nil
}
