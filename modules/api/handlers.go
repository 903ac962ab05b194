package api

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/example/storefront-demo/modules/admin"
	"github.com/example/storefront-demo/modules/cart"
	"github.com/example/storefront-demo/modules/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	catalogContainer mono.ServiceContainer
	cartContainer    mono.ServiceContainer
	adminContainer   mono.ServiceContainer
	session          admin.SessionPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(catalogContainer, cartContainer, adminContainer mono.ServiceContainer, session admin.SessionPort) *Handlers {
	return &Handlers{
		catalogContainer: catalogContainer,
		cartContainer:    cartContainer,
		adminContainer:   adminContainer,
		session:          session,
	}
}

// Login handles admin login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	adminReq := admin.LoginRequest{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	}
	var resp admin.LoginResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "login",
		json.Marshal, json.Unmarshal, &adminReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Token:   resp.Token,
		Session: resp.Session,
	})
}

// Logout handles admin logout.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	var req admin.LogoutRequest
	var resp admin.LogoutResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "logout",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Logged out"})
}

// Session reports the current admin session.
func (h *Handlers) Session(c *fiber.Ctx) error {
	var req admin.CheckSessionRequest
	var resp admin.CheckSessionResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "check-session",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(SessionResponse{
		Active:  resp.Active,
		Expired: resp.Expired,
		Session: resp.Session,
	})
}

// RememberedEmail returns the email stored by a remember-me login.
func (h *Handlers) RememberedEmail(c *fiber.Ctx) error {
	var req admin.RememberedEmailRequest
	var resp admin.RememberedEmailResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "remembered-email",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetTheme returns the stored UI theme.
func (h *Handlers) GetTheme(c *fiber.Ctx) error {
	var req admin.GetThemeRequest
	var resp admin.ThemeResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "get-theme",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// SetTheme stores the UI theme.
func (h *Handlers) SetTheme(c *fiber.Ctx) error {
	var req SetThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	adminReq := admin.SetThemeRequest{Theme: req.Theme}
	var resp admin.ThemeResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.adminContainer, "set-theme",
		json.Marshal, json.Unmarshal, &adminReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ListProducts lists or searches the catalog depending on the search
// and category query parameters.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	term := c.Query("search")
	category := c.Query("category")

	var resp catalog.ListProductsResponse
	if term != "" || category != "" {
		req := catalog.SearchProductsRequest{Term: term, Category: category}
		if err := helper.CallRequestReplyService(
			c.UserContext(), h.catalogContainer, "search",
			json.Marshal, json.Unmarshal, &req, &resp,
		); err != nil {
			return h.handleServiceError(c, err)
		}
	} else {
		req := catalog.ListProductsRequest{}
		if err := helper.CallRequestReplyService(
			c.UserContext(), h.catalogContainer, "list",
			json.Marshal, json.Unmarshal, &req, &resp,
		); err != nil {
			return h.handleServiceError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetProduct returns a single product by id.
func (h *Handlers) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	req := catalog.GetProductRequest{ID: id}
	var resp catalog.GetProductResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "get",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}
	if !resp.Found {
		return notFound(c, "Product not found")
	}

	return c.Status(fiber.StatusOK).JSON(catalog.ProductResponse{Product: *resp.Product})
}

// AdvancedSearch filters the catalog on the combined criteria in the
// request body.
func (h *Handlers) AdvancedSearch(c *fiber.Ctx) error {
	var filters catalog.SearchFilters
	if err := c.BodyParser(&filters); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req := catalog.AdvancedSearchRequest{Filters: filters}
	var resp catalog.ListProductsResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "advanced-search",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Stats returns the catalog aggregates.
func (h *Handlers) Stats(c *fiber.Ctx) error {
	req := catalog.StatsRequest{}
	var resp catalog.StatsResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "stats",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// LowStock lists products at or below the threshold query parameter.
func (h *Handlers) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 0)

	req := catalog.LowStockRequest{Threshold: threshold}
	var resp catalog.ListProductsResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "low-stock",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateProduct adds a product to the catalog.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	catalogReq := catalog.CreateProductRequest{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	}
	var resp catalog.ProductResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "create",
		json.Marshal, json.Unmarshal, &catalogReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateProduct patches a product's mutable fields.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	catalogReq := catalog.UpdateProductRequest{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	}
	var resp catalog.ProductResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "update",
		json.Marshal, json.Unmarshal, &catalogReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteProduct removes a product from the catalog.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	req := catalog.DeleteProductRequest{ID: id}
	var resp catalog.ProductResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "delete",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ExportProducts returns the serialized catalog.
func (h *Handlers) ExportProducts(c *fiber.Ctx) error {
	req := catalog.ExportRequest{}
	var resp catalog.ExportResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "export",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(resp.Data)
}

// ImportProducts replaces the catalog with the posted product list.
func (h *Handlers) ImportProducts(c *fiber.Ctx) error {
	req := catalog.ImportRequest{Data: c.Body()}
	var resp catalog.ImportResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "import",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// AddToCart looks up the product and adds it to the cart.
func (h *Handlers) AddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	getReq := catalog.GetProductRequest{ID: req.ProductID}
	var getResp catalog.GetProductResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.catalogContainer, "get",
		json.Marshal, json.Unmarshal, &getReq, &getResp,
	); err != nil {
		return h.handleServiceError(c, err)
	}
	if !getResp.Found {
		return notFound(c, "Product not found")
	}

	cartReq := cart.AddItemRequest{Product: *getResp.Product, Quantity: req.Quantity}
	var cartResp cart.AddItemResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "add",
		json.Marshal, json.Unmarshal, &cartReq, &cartResp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(cartResp)
}

// CartItems lists the cart contents with running totals.
func (h *Handlers) CartItems(c *fiber.Ctx) error {
	req := cart.ItemsRequest{}
	var resp cart.ItemsResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "items",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// UpdateCartItem sets a cart line's quantity. A quantity of zero
// removes the line.
func (h *Handlers) UpdateCartItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cartReq := cart.UpdateQuantityRequest{ProductID: id, Quantity: req.Quantity}
	var resp cart.LineResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "update-quantity",
		json.Marshal, json.Unmarshal, &cartReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// RemoveCartItem deletes a cart line.
func (h *Handlers) RemoveCartItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	req := cart.RemoveItemRequest{ProductID: id}
	var resp cart.LineResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "remove",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ClearCart empties the cart.
func (h *Handlers) ClearCart(c *fiber.Ctx) error {
	req := cart.ClearRequest{}
	var resp cart.ClearResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "clear",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Cart cleared"})
}

// OrderSummary prices the cart with an optional discount code from the
// discountCode query parameter.
func (h *Handlers) OrderSummary(c *fiber.Ctx) error {
	req := cart.SummaryRequest{DiscountCode: c.Query("discountCode")}
	var resp cart.SummaryResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.cartContainer, "summary",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// handleServiceError maps service errors to HTTP responses. It matches
// error messages to provide user-friendly responses without exposing
// internals.
func (h *Handlers) handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "invalid credentials"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid email or password",
		})
	case strings.Contains(errStr, "insufficient stock"),
		strings.Contains(errStr, "maximum available"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "Insufficient stock available",
		})
	case strings.Contains(errStr, "invalid product"),
		strings.Contains(errStr, "invalid data format"),
		strings.Contains(errStr, "no valid products"),
		strings.Contains(errStr, "unknown theme"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: errStr,
		})
	case strings.Contains(errStr, "not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}
