package handlers

import (
	"log"

	"hotelmenu/internal/models"
	"hotelmenu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for menu categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only category routes.
func (h *CategoryHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleList)
}

// RegisterAdminRoutes registers the full CRUD routes.
func (h *CategoryHandler) RegisterAdminRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Get("/:id", h.HandleGet)
	categoryRoutes.Put("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleDelete)
}

// CategoryRequest represents the request body for creating or updating a
// category. A zero sort_order means "append at the end of the group".
type CategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Group     string `json:"group" validate:"required,oneof=FOOD DRINKS"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
	ImageURL  string `json:"image_url" validate:"omitempty,max=500"`
}

// HandleList returns all categories ordered by group, sort_order and name.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, "Failed to retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGet returns a single category by ID.
func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	category, err := h.service.GetCategory(c.Params("id"))
	if err != nil {
		return respondError(c, "Failed to retrieve category", err)
	}
	return c.JSON(fiber.Map{
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category := models.Category{
		Name:      req.Name,
		Group:     req.Group,
		SortOrder: req.SortOrder,
		ImageURL:  req.ImageURL,
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return respondError(c, "Failed to create category", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Category created successfully",
		"data":    category,
	})
}

// HandleUpdate updates an existing category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	fields := models.Category{
		Name:      req.Name,
		Group:     req.Group,
		SortOrder: req.SortOrder,
		ImageURL:  req.ImageURL,
	}
	category, err := h.service.UpdateCategory(c.Params("id"), &fields)
	if err != nil {
		return respondError(c, "Failed to update category", err)
	}

	return c.JSON(fiber.Map{
		"message": "Category updated successfully",
		"data":    category,
	})
}

// HandleDelete deletes a category. Deletion is refused with 409 while menu
// items still reference the category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, "Failed to delete category", err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
