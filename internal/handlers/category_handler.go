package handlers

import (
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/shivamzowork/Product-catalog/internal/middleware"
	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	cache    RenderCache
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, cache RenderCache) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		cache:    cache,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Get("/:slug", h.HandleGetCategory)
	categoryRoutes.Post("/", h.HandleCreateCategory)
}

// HandleListCategories retrieves the category listing, served from the
// render cache when available.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	if h.cache != nil {
		if payload, ok := h.cache.Get(services.CategoriesPath); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}

	categories := h.service.ListCategories()

	if h.cache != nil {
		if payload, err := json.Marshal(categories); err == nil {
			h.cache.Set(services.CategoriesPath, payload)
		}
	}
	return c.JSON(categories)
}

// HandleGetCategory retrieves a single category by its slug. The lookup is
// exact and case-sensitive.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	category := h.service.GetCategoryBySlug(c.Params("slug"))
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Category not found",
		})
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category. The accessor rejects
// non-admin callers.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	result := h.service.CreateCategory(middleware.ActorFrom(c), &category)
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
