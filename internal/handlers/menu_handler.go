package handlers

import (
	"log"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"
	"hotelmenu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// MenuHandler handles HTTP requests for menu items.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only menu routes. They only expose
// available items. The ":id" route must be registered last so it does not
// shadow the static paths.
func (h *MenuHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/", h.HandlePublicList)
	router.Get("/category/:categoryId", h.HandlePublicListByCategory)
	router.Get("/:id", h.HandlePublicGet)
}

// RegisterAdminRoutes registers the full CRUD routes.
func (h *MenuHandler) RegisterAdminRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/", h.HandleList)
	menuRoutes.Post("/", h.HandleCreate)
	menuRoutes.Get("/category/:categoryId", h.HandleListByCategory)
	menuRoutes.Get("/:id", h.HandleGet)
	menuRoutes.Put("/:id", h.HandleUpdate)
	menuRoutes.Delete("/:id", h.HandleDelete)
}

// MenuItemRequest represents the request body for creating or updating a menu
// item. Available defaults to true when omitted.
type MenuItemRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description" validate:"omitempty,max=1000"`
	CategoryID      string          `json:"category_id" validate:"required"`
	PriceRoom       decimal.Decimal `json:"price_room"`
	PriceRestaurant decimal.Decimal `json:"price_restaurant"`
	Available       *bool           `json:"available"`
	ImageURL        string          `json:"image_url" validate:"omitempty,max=500"`
	Tags            []string        `json:"tags" validate:"omitempty,dive,min=1"`
}

func (req *MenuItemRequest) toModel() models.MenuItem {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return models.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		PriceRoom:       req.PriceRoom,
		PriceRestaurant: req.PriceRestaurant,
		Available:       available,
		ImageURL:        req.ImageURL,
		Tags:            models.TagList(req.Tags),
	}
}

// parseFilter reads the optional category and available query parameters.
func parseFilter(c *fiber.Ctx) repositories.MenuItemFilter {
	filter := repositories.MenuItemFilter{
		CategoryID: c.Query("category"),
	}
	switch c.Query("available") {
	case "true":
		available := true
		filter.Available = &available
	case "false":
		available := false
		filter.Available = &available
	}
	return filter
}

// HandlePublicList returns all available menu items with their categories.
func (h *MenuHandler) HandlePublicList(c *fiber.Ctx) error {
	available := true
	items, err := h.service.ListMenuItems(repositories.MenuItemFilter{
		CategoryID: c.Query("category"),
		Available:  &available,
	})
	if err != nil {
		return respondError(c, "Failed to retrieve menu", err)
	}
	return c.JSON(items)
}

// HandlePublicGet returns a single available menu item. Unavailable items are
// hidden from the public surface without being deleted.
func (h *MenuHandler) HandlePublicGet(c *fiber.Ctx) error {
	item, err := h.service.GetMenuItem(c.Params("id"))
	if err != nil {
		return respondError(c, "Failed to retrieve menu item", err)
	}
	if !item.Available {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Failed to retrieve menu item",
			"error":   repositories.ErrMenuItemNotFound.Error(),
		})
	}
	return c.JSON(item)
}

// HandlePublicListByCategory returns the available menu items of a category.
func (h *MenuHandler) HandlePublicListByCategory(c *fiber.Ctx) error {
	items, err := h.service.GetMenuItemsByCategory(c.Params("categoryId"))
	if err != nil {
		return respondError(c, "Failed to retrieve menu items", err)
	}
	visible := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			visible = append(visible, item)
		}
	}
	return c.JSON(visible)
}

// HandleList returns menu items, optionally filtered by the category and
// available query parameters.
func (h *MenuHandler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.ListMenuItems(parseFilter(c))
	if err != nil {
		return respondError(c, "Failed to retrieve menu", err)
	}
	return c.JSON(items)
}

// HandleGet returns a single menu item by ID.
func (h *MenuHandler) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.GetMenuItem(c.Params("id"))
	if err != nil {
		return respondError(c, "Failed to retrieve menu item", err)
	}
	return c.JSON(fiber.Map{
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}

// HandleListByCategory returns all menu items of a category.
func (h *MenuHandler) HandleListByCategory(c *fiber.Ctx) error {
	items, err := h.service.GetMenuItemsByCategory(c.Params("categoryId"))
	if err != nil {
		return respondError(c, "Failed to retrieve menu items", err)
	}
	return c.JSON(items)
}

// HandleCreate creates a new menu item.
func (h *MenuHandler) HandleCreate(c *fiber.Ctx) error {
	var req MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing menu item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	item := req.toModel()
	if err := h.service.CreateMenuItem(&item); err != nil {
		return respondError(c, "Failed to create menu item", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Menu item created successfully",
		"data":    item,
	})
}

// HandleUpdate updates an existing menu item.
func (h *MenuHandler) HandleUpdate(c *fiber.Ctx) error {
	var req MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing menu item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	fields := req.toModel()
	item, err := h.service.UpdateMenuItem(c.Params("id"), &fields)
	if err != nil {
		return respondError(c, "Failed to update menu item", err)
	}

	return c.JSON(fiber.Map{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

// HandleDelete deletes a menu item.
func (h *MenuHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteMenuItem(c.Params("id")); err != nil {
		return respondError(c, "Failed to delete menu item", err)
	}
	return c.JSON(fiber.Map{
		"message": "Menu item deleted successfully",
	})
}
