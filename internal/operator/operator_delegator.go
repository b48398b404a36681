package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/operator/actions"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

const DefaultQueueSize = 1000

var (
	// ErrStopped is returned for actions submitted after Stop.
	ErrStopped = errors.New("operator: stopped")
	// ErrQueueFull is returned by Dispatch when the queue has no free slot. The action is dropped.
	ErrQueueFull = errors.New("operator: queue full")
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With a single worker, actions are performed in submission order.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan ActionItem
	numWorkers int
	publisher  events.Publisher
	logger     *logrus.Logger
	onFailure  FailureHandler

	wg       sync.WaitGroup
	stopOnce sync.Once
	mutex    sync.RWMutex
	stopped  bool
}

type Option func(*OperatorDelegator)

func WithQueueSize(size int) Option {
	return func(d *OperatorDelegator) {
		if size > 0 {
			d.queue = make(chan ActionItem, size)
		}
	}
}

func WithPublisher(publisher events.Publisher) Option {
	return func(d *OperatorDelegator) {
		d.publisher = publisher
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(d *OperatorDelegator) {
		d.logger = logger
	}
}

// WithFailureHandler registers a hook for failed dispatched actions.
func WithFailureHandler(handler FailureHandler) Option {
	return func(d *OperatorDelegator) {
		d.onFailure = handler
	}
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, opts ...Option) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	d := &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, DefaultQueueSize),
		numWorkers: numWorkers,
		publisher:  events.NoopPublisher{},
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.publisher, d.logger, d.onFailure)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop refuses new actions and waits for the queued ones to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mutex.Lock()
		d.stopped = true
		close(d.queue)
		d.mutex.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its result.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch enqueues action without waiting for the write or for a free slot. The action outlives the caller's context cancellation; its failure only reaches the log and the
// FailureHandler. When the queue is full the action is dropped, reported the same way, and
// ErrQueueFull is returned.
func (d *OperatorDelegator) Dispatch(ctx context.Context, action actions.IAction) error {
	err := d.tryEnqueue(ActionItem{
		ctx:    context.WithoutCancel(ctx),
		action: action,
	})
	if errors.Is(err, ErrQueueFull) {
		d.logger.WithError(err).WithField("action", actionName(action)).Error("Operator.Dispatch.dropped")
		if d.onFailure != nil {
			d.onFailure(action, err)
		}
	}
	return err
}

func (d *OperatorDelegator) tryEnqueue(item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.stopped {
		return ErrStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
