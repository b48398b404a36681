package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/operator/actions"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

// FailureHandler is told about every dispatched action that failed. Nobody else is.
type FailureHandler func(action actions.IAction, err error)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage   *storage.Storage
	queue     chan ActionItem
	publisher events.Publisher
	logger    *logrus.Logger
	onFailure FailureHandler
}

func NewOperator(s *storage.Storage, queue chan ActionItem, publisher events.Publisher, logger *logrus.Logger, onFailure FailureHandler) *Operator {
	return &Operator{
		storage:   s,
		queue:     queue,
		publisher: publisher,
		logger:    logger,
		onFailure: onFailure,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.storage)
	if err == nil {
		o.announce(item.ctx, item.action)
	}

	if item.response != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err != nil {
		o.logger.WithError(err).WithField("action", actionName(item.action)).Error("Operator.Dispatch.failed")
		if o.onFailure != nil {
			o.onFailure(item.action, err)
		}
	}
}

func (o *Operator) announce(ctx context.Context, action actions.IAction) {
	announcer, ok := action.(actions.Announcer)
	if !ok {
		return
	}
	for _, event := range announcer.Events() {
		if err := o.publisher.Publish(ctx, event); err != nil {
			o.logger.WithError(err).WithField("routingKey", event.RoutingKey()).Warn("Operator.announce.publish failed")
		}
	}
}

func actionName(action actions.IAction) string {
	return fmt.Sprintf("%T", action)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
