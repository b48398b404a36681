package events

import (
	"context"
	"encoding/json"
	"time"
)

type Entity string

const (
	EntityTransactionType Entity = "transaction_type"
	EntityTransaction     Entity = "transaction"
)

type Change string

const (
	ChangeAdded   Change = "added"
	ChangeUpdated Change = "updated"
	ChangeRemoved Change = "removed"
	ChangeSet     Change = "set"
)

// Event announces a persisted write. It carries only the id; consumers read the record themselves.
type Event struct {
	Entity    Entity    `json:"entity"`
	Change    Change    `json:"change"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(entity Entity, change Change, id string) Event {
	return Event{
		Entity:    entity,
		Change:    change,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// RoutingKey is "<entity>.<change>".
func (e Event) RoutingKey() string {
	return string(e.Entity) + "." + string(e.Change)
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
