package service

import (
	"time"

	"github.com/niksmo/jubilant/internal/core/port"
)

var _ port.CatalogReader = (*Service)(nil)
var _ port.ShortlistToggler = (*Service)(nil)
var _ port.ShortlistFilterer = (*Service)(nil)
var _ port.LeadSubmitter = (*Service)(nil)

type Service struct {
	catalog        port.CatalogStore
	shortlist      port.ShortlistStore
	eventsProducer port.ShortlistEventsProducer
	leadsStorage   port.LeadsStorage
	notifier       port.Notifier
	now            func() time.Time
}

// New returns the core service. eventsProducer may be nil, then
// shortlist events are not published.
func New(
	catalog port.CatalogStore,
	shortlist port.ShortlistStore,
	eventsProducer port.ShortlistEventsProducer,
	leadsStorage port.LeadsStorage,
	notifier port.Notifier,
) *Service {
	return &Service{
		catalog:        catalog,
		shortlist:      shortlist,
		eventsProducer: eventsProducer,
		leadsStorage:   leadsStorage,
		notifier:       notifier,
		now:            time.Now,
	}
}
