package services

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/repositories"
	"github.com/shivamzowork/Product-catalog/pkg/rabbitmq"
)

const (
	defaultPageSize = 12
	defaultPage     = 1
)

// ProductListParams narrows and paginates a public product listing.
type ProductListParams struct {
	Limit      int
	Page       int
	CategoryID string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	cache      PageInvalidator
	events     EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categories repositories.CategoryRepository, cache PageInvalidator, events EventPublisher) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		cache:      cache,
		events:     events,
	}
}

// ListProducts retrieves one page of published products, optionally
// restricted to a category. Defaults: 12 per page, page 1. A store failure
// is logged and masked as an empty page.
func (s *ProductService) ListProducts(params ProductListParams) models.ProductPage {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	page := params.Page
	if page <= 0 {
		page = defaultPage
	}

	products, total, err := s.repo.List(repositories.ProductListFilter{
		Status:     models.StatusPublished,
		CategoryID: params.CategoryID,
		Limit:      limit,
		Page:       page,
	})
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return models.ProductPage{Docs: []models.Product{}, Page: page}
	}

	return models.ProductPage{
		Docs:       products,
		TotalDocs:  total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Page:       page,
	}
}

// GetProductBySlug retrieves the first published product matching the slug
// with its category and images resolved, or nil when absent or when the
// store is unavailable.
func (s *ProductService) GetProductBySlug(slug string) *models.Product {
	product, err := s.repo.GetBySlug(slug, models.StatusPublished)
	if err != nil {
		log.Printf("Error getting product by slug %s: %v", slug, err)
		return nil
	}
	return product
}

// CreateProduct creates a new product. The actor must be an admin. Status is
// taken from the caller; an unset status creates a draft, which stays off
// public read paths until published.
func (s *ProductService) CreateProduct(actor *models.User, product *models.Product) models.Result[models.Product] {
	if !IsAdmin(actor) {
		return models.Fail[models.Product](adminRequiredMessage)
	}

	if product.Status == "" {
		product.Status = models.StatusDraft
	}
	if product.Status != models.StatusDraft && product.Status != models.StatusPublished {
		return models.Fail[models.Product]("invalid product status: " + product.Status)
	}
	if err := s.checkCategory(product.CategoryID); err != nil {
		return models.Fail[models.Product](err.Error())
	}

	if err := s.repo.Create(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return models.Fail[models.Product]("could not create product")
	}

	if s.cache != nil {
		s.cache.Invalidate(ProductsPath)
	}
	s.publish(rabbitmq.Event{Type: "product.created", Entity: "product", ID: product.ID, Slug: product.Slug})

	return models.OK(product, "product created")
}

// UpdateProduct applies a partial update. The actor must be an admin; on
// success both the listing render and the product's detail render (keyed by
// the post-update slug) are invalidated.
func (s *ProductService) UpdateProduct(actor *models.User, id string, fields map[string]interface{}) models.Result[models.Product] {
	if !IsAdmin(actor) {
		return models.Fail[models.Product](adminRequiredMessage)
	}

	columns, err := productUpdateColumns(fields)
	if err != nil {
		return models.Fail[models.Product](err.Error())
	}
	if len(columns) == 0 {
		return models.Fail[models.Product]("no updatable fields supplied")
	}
	if value, ok := columns["category_id"]; ok {
		categoryID, _ := value.(string)
		if err := s.checkCategory(categoryID); err != nil {
			return models.Fail[models.Product](err.Error())
		}
	}

	product, err := s.repo.Update(id, columns)
	if err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return models.Fail[models.Product]("could not update product")
	}

	if s.cache != nil {
		s.cache.Invalidate(ProductsPath, ProductsPath+"/"+product.Slug)
	}
	s.publish(rabbitmq.Event{Type: "product.updated", Entity: "product", ID: product.ID, Slug: product.Slug})

	return models.OK(product, "product updated")
}

// DeleteProduct removes a product. The actor must be an admin; on success
// the listing render is invalidated. A missing id yields a failure shape and
// no invalidation.
func (s *ProductService) DeleteProduct(actor *models.User, id string) models.Result[models.Product] {
	if !IsAdmin(actor) {
		return models.Fail[models.Product](adminRequiredMessage)
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return models.Fail[models.Product]("could not delete product")
	}

	if s.cache != nil {
		s.cache.Invalidate(ProductsPath)
	}
	s.publish(rabbitmq.Event{Type: "product.deleted", Entity: "product", ID: id})

	return models.Result[models.Product]{Success: true, Message: "product deleted"}
}

// checkCategory rejects a write that would point a product at a category
// that does not exist.
func (s *ProductService) checkCategory(categoryID string) error {
	if _, err := s.categories.GetByID(categoryID); err != nil {
		log.Printf("Error resolving category %s: %v", categoryID, err)
		return &unknownCategoryError{categoryID}
	}
	return nil
}

func (s *ProductService) publish(event rabbitmq.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event); err != nil {
		log.Printf("Error publishing %s event: %v", event.Type, err)
	}
}

// updatableProductColumns maps accepted payload keys to store columns.
// Unknown keys are rejected so a partial update cannot write arbitrary
// columns.
var updatableProductColumns = map[string]string{
	"title":            "title",
	"slug":             "slug",
	"price":            "price",
	"categoryId":       "category_id",
	"shortDescription": "short_description",
	"description":      "description",
	"sku":              "sku",
	"inventory":        "inventory",
	"status":           "status",
}

func productUpdateColumns(fields map[string]interface{}) (map[string]interface{}, error) {
	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := updatableProductColumns[key]
		if !ok {
			return nil, &unknownFieldError{key}
		}
		if key == "status" {
			status, _ := value.(string)
			if status != models.StatusDraft && status != models.StatusPublished {
				return nil, &invalidStatusError{status}
			}
		}
		if key == "description" && value != nil {
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, err
			}
			value = datatypes.JSON(raw)
		}
		columns[column] = value
	}
	return columns, nil
}

type unknownFieldError struct{ field string }

func (e *unknownFieldError) Error() string { return "unknown product field: " + e.field }

type invalidStatusError struct{ status string }

func (e *invalidStatusError) Error() string { return "invalid product status: " + e.status }

type unknownCategoryError struct{ id string }

func (e *unknownCategoryError) Error() string { return "unknown category: " + e.id }
