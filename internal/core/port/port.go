package port

import (
	"context"

	"github.com/niksmo/jubilant/internal/core/domain"
)

type (
	closer interface {
		Close()
	}
)

// Inbound ports.

type CatalogReader interface {
	ListProducts(context.Context, domain.Kind) ([]domain.Product, error)
	ListAll(ctx context.Context, userID string) ([]domain.ListedProduct, error)
	FindProduct(ctx context.Context, id string) (domain.Product, error)
}

type ShortlistToggler interface {
	Toggle(ctx context.Context, userID string, req domain.ToggleRequest) (domain.ToggleOutcome, error)
}

type ShortlistFilterer interface {
	FilterShortlist(ctx context.Context, userID string, spec domain.FilterSpec) ([]domain.ListedProduct, error)
}

type LeadSubmitter interface {
	SubmitLead(context.Context, domain.Lead) error
}

// Outbound ports.

type CatalogStore interface {
	List(domain.Kind) []domain.Product
	All() []domain.Product
	FindByID(id string) (domain.Product, error)
}

// A ShortlistStore owns the user to ordered product ids mapping.
//
// Add and Remove must be linearizable per user.
type ShortlistStore interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, productID string) (added bool, err error)
	Remove(ctx context.Context, userID, productID string) (removed bool, err error)
}

type ShortlistEventsProducer interface {
	ProduceEvent(context.Context, domain.ShortlistEvent) error
	closer
}

// A LeadsStorage persists a lead. The beforeCommit hook runs inside
// the storage transaction; a hook error aborts the insert.
type LeadsStorage interface {
	StoreLead(
		ctx context.Context,
		lead domain.Lead,
		beforeCommit func(context.Context) error,
	) error
}

type Notifier interface {
	Notify(context.Context, domain.Notification) error
}
