package services

import "github.com/shivamzowork/Product-catalog/pkg/rabbitmq"

// Listing and detail paths whose cached renders are invalidated after
// catalog mutations.
const (
	ProductsPath   = "/products"
	CategoriesPath = "/categories"
)

// PageInvalidator discards cached page renders for the given paths.
// Invalidation is fire-and-forget: implementations must not surface
// failures to the accessor.
type PageInvalidator interface {
	Invalidate(paths ...string)
}

// EventPublisher pushes catalog change events to downstream consumers.
type EventPublisher interface {
	PublishCatalogEvent(event rabbitmq.Event) error
}

// ObjectStore deletes binaries from external object storage.
type ObjectStore interface {
	Delete(bucket, path string) error
}

const adminRequiredMessage = "admin access required"
