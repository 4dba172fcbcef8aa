package handlers

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/shivamzowork/Product-catalog/internal/middleware"
	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
	"github.com/shivamzowork/Product-catalog/internal/views"
)

// RenderCache serves and stores rendered page payloads keyed by path.
type RenderCache interface {
	Get(path string) ([]byte, bool)
	Set(path string, payload []byte)
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	cache    RenderCache
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, cache RenderCache) *ProductHandler {
	return &ProductHandler{
		service:  service,
		cache:    cache,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:slug", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts retrieves a page of published products. The default
// listing (no query parameters) is served from the render cache when
// available.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	page := c.QueryInt("page")
	category := c.Query("category")
	query := c.Query("q")
	sortKey := c.Query("sort")

	defaultListing := limit == 0 && page == 0 && category == "" && query == "" && sortKey == ""
	if defaultListing && h.cache != nil {
		if payload, ok := h.cache.Get(services.ProductsPath); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}

	result := h.service.ListProducts(services.ProductListParams{
		Limit:      limit,
		Page:       page,
		CategoryID: category,
	})

	// Derive the requested view from the fetched page. The derived list is
	// recomputed in full each time; the fetched docs are never mutated.
	if query != "" {
		result.Docs = views.FilterProducts(result.Docs, query, "")
	}
	if sortKey != "" {
		result.Docs = views.SortProducts(result.Docs, views.SortKey(sortKey))
	}

	if defaultListing && h.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			h.cache.Set(services.ProductsPath, payload)
		}
	}
	return c.JSON(result)
}

// HandleGetProduct retrieves a single published product by its slug, served
// from the render cache when available.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	slug := c.Params("slug")
	path := services.ProductsPath + "/" + slug

	if h.cache != nil {
		if payload, ok := h.cache.Get(path); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}

	product := h.service.GetProductBySlug(slug)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	if h.cache != nil {
		if payload, err := json.Marshal(product); err == nil {
			h.cache.Set(path, payload)
		}
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. The accessor rejects
// non-admin callers.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	result := h.service.CreateProduct(middleware.ActorFrom(c), &product)
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result := h.service.UpdateProduct(middleware.ActorFrom(c), c.Params("id"), fields)
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.JSON(result)
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	result := h.service.DeleteProduct(middleware.ActorFrom(c), c.Params("id"))
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.JSON(result)
}

// failureStatus maps a uniform failure message to an HTTP status. The body
// always carries the result shape verbatim.
func failureStatus(message string) int {
	switch {
	case message == "admin access required":
		return fiber.StatusForbidden
	case strings.Contains(message, "not found"):
		return fiber.StatusNotFound
	case strings.Contains(message, "invalid"),
		strings.Contains(message, "unknown"),
		strings.Contains(message, "no updatable"):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
