package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/operator"
	"github.com/carson-networks/budget-dashboard/internal/operator/actions"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
	"github.com/carson-networks/budget-dashboard/internal/storage/transactiontype"
)

type failure struct {
	action actions.IAction
	err    error
}

type testHarness struct {
	store    *Store
	operator *operator.OperatorDelegator
	types    *transactiontype.MockITransactionTypeRepository
	txs      *transaction.MockITransactionRepository

	mutex    sync.Mutex
	failures []failure
}

func newTestHarness(t *testing.T, opts ...operator.Option) *testHarness {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	h := &testHarness{
		types: transactiontype.NewMockITransactionTypeRepository(t),
		txs:   transaction.NewMockITransactionRepository(t),
	}
	opts = append([]operator.Option{
		operator.WithLogger(logger),
		operator.WithFailureHandler(func(action actions.IAction, err error) {
			h.mutex.Lock()
			defer h.mutex.Unlock()
			h.failures = append(h.failures, failure{action: action, err: err})
		}),
	}, opts...)
	h.operator = operator.NewOperatorDelegator(&storage.Storage{TransactionTypes: h.types, Transactions: h.txs}, 1, opts...)
	h.operator.Start()
	t.Cleanup(h.operator.Stop)
	h.store = New(h.operator, logger)
	return h
}

func TestStore_AddThenRemoveTransactionType(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	salary := model.NewTransactionType("A", "Salary", true)

	h.types.EXPECT().Add(mock.Anything, salary).Return(nil).Once()
	h.types.EXPECT().Remove(mock.Anything, "A").Return(nil).Once()

	require.NoError(t, h.store.Dispatch(ctx, AddTransactionType{TransactionType: salary}))
	got, ok := h.store.TransactionType("A")
	require.True(t, ok, "visible before the write completes")
	assert.True(t, got.IsCredit())

	require.NoError(t, h.store.Dispatch(ctx, RemoveTransactionType{ID: "A"}))
	_, ok = h.store.TransactionType("A")
	assert.False(t, ok)

	h.operator.Stop()
	assert.Empty(t, h.failures)
}

func TestStore_FailedWriteLeavesStateDiverged(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	salary := model.NewTransactionType("A", "Salary", true)
	writeErr := &storage.PersistenceError{Op: "insert", Collection: transactiontype.Collection, Err: errors.New("not primary")}

	h.types.EXPECT().Add(mock.Anything, salary).Return(writeErr).Once()

	require.NoError(t, h.store.Dispatch(ctx, AddTransactionType{TransactionType: salary}))
	h.operator.Stop()

	_, ok := h.store.TransactionType("A")
	assert.True(t, ok, "memory keeps the entity the database rejected")
	require.Len(t, h.failures, 1)
	assert.Equal(t, &actions.AddTransactionType{TransactionType: salary}, h.failures[0].action)
	assert.ErrorIs(t, h.failures[0].err, writeErr)
}

func TestStore_UpdateUnknownIsNoOpInMemory(t *testing.T) {
	h := newTestHarness(t)
	bonus := model.NewTransactionType("B", "Bonus", true)
	h.types.EXPECT().Update(mock.Anything, bonus).Return(storage.ErrNotFound).Once()

	require.NoError(t, h.store.Dispatch(context.Background(), UpdateTransactionType{TransactionType: bonus}))
	h.operator.Stop()

	assert.Empty(t, h.store.TransactionTypes())
	require.Len(t, h.failures, 1)
	assert.ErrorIs(t, h.failures[0].err, storage.ErrNotFound)
}

func TestStore_SetTransactionTypesUpsertsEach(t *testing.T) {
	h := newTestHarness(t)
	set := []model.TransactionType{
		model.NewTransactionType("B", "Bonus", true),
		model.NewTransactionType("A", "Salary", true),
	}
	for _, tt := range set {
		h.types.EXPECT().Upsert(mock.Anything, tt).Return(nil).Once()
	}

	require.NoError(t, h.store.Dispatch(context.Background(), SetTransactionTypes{TransactionTypes: set}))
	h.operator.Stop()

	all := h.store.TransactionTypes()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].ID())
	assert.Equal(t, "B", all[1].ID())
}

func TestStore_TransactionLifecycle(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	salary := model.NewTransactionType("A", "Salary", true)
	tx := model.NewTransaction("t1", salary, decimal.RequireFromString("1500"), "June")
	edited := tx
	edited.Description = "June salary"

	h.txs.EXPECT().Add(mock.Anything, tx).Return(nil).Once()
	h.txs.EXPECT().Update(mock.Anything, edited).Return(nil).Once()
	h.txs.EXPECT().Remove(mock.Anything, "t1").Return(nil).Once()

	require.NoError(t, h.store.Dispatch(ctx, AddTransaction{Transaction: tx}))
	require.NoError(t, h.store.Dispatch(ctx, UpdateTransaction{Transaction: edited}))
	got, ok := h.store.Transaction("t1")
	require.True(t, ok)
	assert.Equal(t, "June salary", got.Description)

	require.NoError(t, h.store.Dispatch(ctx, RemoveTransaction{ID: "t1"}))
	assert.Empty(t, h.store.Transactions())
	h.operator.Stop()
}

func TestStore_SetTransactions(t *testing.T) {
	h := newTestHarness(t)
	salary := model.NewTransactionType("A", "Salary", true)
	set := []model.Transaction{
		model.NewTransaction("t2", salary, decimal.NewFromInt(10), "b"),
		model.NewTransaction("t1", salary, decimal.NewFromInt(20), "a"),
	}
	h.txs.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Twice()

	require.NoError(t, h.store.Dispatch(context.Background(), SetTransactions{Transactions: set}))
	h.operator.Stop()

	all := h.store.Transactions()
	require.Len(t, all, 2)
	assert.Equal(t, "t1", all[0].ID)
}

func TestStore_HydrateWritesNothing(t *testing.T) {
	h := newTestHarness(t)
	salary := model.NewTransactionType("A", "Salary", true)
	h.types.EXPECT().GetAll(mock.Anything).Return([]model.TransactionType{salary}, nil).Once()
	h.txs.EXPECT().GetAll(mock.Anything).Return([]model.Transaction{
		model.NewTransaction("t1", salary, decimal.NewFromInt(5), "x"),
	}, nil).Once()

	require.NoError(t, h.store.Hydrate(context.Background()))
	h.operator.Stop()

	assert.Len(t, h.store.TransactionTypes(), 1)
	assert.Len(t, h.store.Transactions(), 1)
}

func TestStore_HydrateError(t *testing.T) {
	h := newTestHarness(t)
	cfgErr := &storage.ConfigurationError{Variable: storage.ConnectionStringVariable}
	h.types.EXPECT().GetAll(mock.Anything).Return(nil, cfgErr).Once()

	err := h.store.Hydrate(context.Background())

	var target *storage.ConfigurationError
	assert.ErrorAs(t, err, &target)
	assert.Empty(t, h.store.TransactionTypes())
}

func TestStore_DispatchAfterStop(t *testing.T) {
	h := newTestHarness(t)
	h.operator.Stop()

	err := h.store.Dispatch(context.Background(), RemoveTransactionType{ID: "A"})
	assert.ErrorIs(t, err, operator.ErrStopped)
}

func TestStore_AddExistingIDRefused(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	salary := model.NewTransactionType("A", "Salary", true)
	h.types.EXPECT().Add(mock.Anything, salary).Return(nil).Once()

	require.NoError(t, h.store.Dispatch(ctx, AddTransactionType{TransactionType: salary}))
	err := h.store.Dispatch(ctx, AddTransactionType{TransactionType: model.NewTransactionType("A", "Other")})
	assert.ErrorIs(t, err, ErrDuplicate)

	tx := model.NewTransaction("t1", salary, decimal.NewFromInt(1), "x")
	h.txs.EXPECT().Add(mock.Anything, tx).Return(nil).Once()
	require.NoError(t, h.store.Dispatch(ctx, AddTransaction{Transaction: tx}))
	assert.ErrorIs(t, h.store.Dispatch(ctx, AddTransaction{Transaction: tx}), ErrDuplicate)
	h.operator.Stop()

	got, _ := h.store.TransactionType("A")
	assert.Equal(t, "Salary", got.Description())
	assert.Empty(t, h.failures)
}

func TestStore_AddRaceHasOneWinner(t *testing.T) {
	h := newTestHarness(t)
	h.types.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()

	const racers = 8
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		go func() {
			results <- h.store.Dispatch(context.Background(), AddTransactionType{TransactionType: model.NewTransactionType("A", "Salary", true)})
		}()
	}

	var won, refused int
	for i := 0; i < racers; i++ {
		if err := <-results; err == nil {
			won++
		} else if errors.Is(err, ErrDuplicate) {
			refused++
		}
	}
	h.operator.Stop()

	assert.Equal(t, 1, won)
	assert.Equal(t, racers-1, refused)
}

func TestStore_DispatchDoesNotWaitForQueueSpace(t *testing.T) {
	h := newTestHarness(t, operator.WithQueueSize(1))
	ctx := context.Background()
	a := model.NewTransactionType("A", "Salary", true)
	b := model.NewTransactionType("B", "Bonus", true)
	c := model.NewTransactionType("C", "Gift", true)

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	h.types.EXPECT().Add(mock.Anything, a).RunAndReturn(func(context.Context, model.TransactionType) error {
		close(started)
		<-release
		return nil
	}).Once()
	h.types.EXPECT().Add(mock.Anything, b).Return(nil).Once()

	require.NoError(t, h.store.Dispatch(ctx, AddTransactionType{TransactionType: a}))
	<-started
	require.NoError(t, h.store.Dispatch(ctx, AddTransactionType{TransactionType: b}), "fills the only slot")

	dispatched := make(chan error, 1)
	go func() { dispatched <- h.store.Dispatch(ctx, AddTransactionType{TransactionType: c}) }()
	select {
	case err := <-dispatched:
		assert.ErrorIs(t, err, operator.ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("Dispatch waited for queue space")
	}

	read := make(chan []model.TransactionType, 1)
	go func() { read <- h.store.TransactionTypes() }()
	select {
	case all := <-read:
		assert.Len(t, all, 3, "the state change happens even when its write is dropped")
	case <-time.After(time.Second):
		t.Fatal("reads blocked behind a full queue")
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	require.Len(t, h.failures, 1)
	assert.Equal(t, &actions.AddTransactionType{TransactionType: c}, h.failures[0].action)
	assert.ErrorIs(t, h.failures[0].err, operator.ErrQueueFull)
}

type flakyPersister struct {
	failOn int
	writes []actions.IAction
}

func (p *flakyPersister) Dispatch(_ context.Context, action actions.IAction) error {
	p.writes = append(p.writes, action)
	if len(p.writes) == p.failOn {
		return operator.ErrQueueFull
	}
	return nil
}

func (p *flakyPersister) Process(context.Context, actions.IAction) error { return nil }

func TestStore_SetQueuesRemainingWritesAfterFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	persister := &flakyPersister{failOn: 2}
	s := New(persister, logger)

	err := s.Dispatch(context.Background(), SetTransactionTypes{TransactionTypes: []model.TransactionType{
		model.NewTransactionType("A", "Salary", true),
		model.NewTransactionType("B", "Bonus", true),
		model.NewTransactionType("C", "Gift", true),
	}})

	assert.ErrorIs(t, err, operator.ErrQueueFull)
	assert.Len(t, persister.writes, 3)
	assert.Len(t, s.TransactionTypes(), 3, "state is replaced even though one write was not queued")
}
