package actions

import (
	"context"

	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, s *storage.Storage) error
}

// Announcer is implemented by actions whose successful Perform should be published.
type Announcer interface {
	Events() []events.Event
}
