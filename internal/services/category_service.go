package services

import (
	"log"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/repositories"
	"github.com/shivamzowork/Product-catalog/pkg/rabbitmq"
)

const categoryListLimit = 100

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	cache  PageInvalidator
	events EventPublisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, cache PageInvalidator, events EventPublisher) *CategoryService {
	return &CategoryService{
		repo:   repo,
		cache:  cache,
		events: events,
	}
}

// ListCategories retrieves up to 100 categories ordered by title ascending.
// A store failure is logged and masked as an empty list.
func (s *CategoryService) ListCategories() []models.Category {
	categories, err := s.repo.GetAll(categoryListLimit)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return []models.Category{}
	}
	return categories
}

// GetCategoryBySlug retrieves the category whose slug equals the input
// exactly, or nil when absent or when the store is unavailable.
func (s *CategoryService) GetCategoryBySlug(slug string) *models.Category {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		log.Printf("Error getting category by slug %s: %v", slug, err)
		return nil
	}
	return category
}

// CreateCategory creates a new category. The actor must be an admin; on
// success the categories listing render is invalidated.
func (s *CategoryService) CreateCategory(actor *models.User, category *models.Category) models.Result[models.Category] {
	if !IsAdmin(actor) {
		return models.Fail[models.Category](adminRequiredMessage)
	}

	if err := s.repo.Create(category); err != nil {
		log.Printf("Error creating category: %v", err)
		return models.Fail[models.Category]("could not create category")
	}

	if s.cache != nil {
		s.cache.Invalidate(CategoriesPath)
	}
	s.publish(rabbitmq.Event{Type: "category.created", Entity: "category", ID: category.ID, Slug: category.Slug})

	return models.OK(category, "category created")
}

func (s *CategoryService) publish(event rabbitmq.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event); err != nil {
		log.Printf("Error publishing %s event: %v", event.Type, err)
	}
}
