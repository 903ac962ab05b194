package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/storefront-demo/modules/admin"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module.
type APIModule struct {
	addr string
	app  *fiber.App

	catalogContainer mono.ServiceContainer
	cartContainer    mono.ServiceContainer
	adminContainer   mono.ServiceContainer
	sessionAdapter   admin.SessionPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule listening on API_ADDR, or :3000
// when unset.
func NewModule() *APIModule {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	return &APIModule{addr: addr}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"catalog", "cart", "admin"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "catalog":
		m.catalogContainer = container
	case "cart":
		m.cartContainer = container
	case "admin":
		m.adminContainer = container
		m.sessionAdapter = admin.NewAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.catalogContainer == nil || m.cartContainer == nil || m.adminContainer == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	// Add middleware
	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	// Setup routes
	m.setupRoutes()

	// Start server in goroutine
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", m.addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	handlers := NewHandlers(m.catalogContainer, m.cartContainer, m.adminContainer, m.sessionAdapter)

	// Health check endpoint
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	// API v1 routes
	v1 := m.app.Group("/api/v1")

	// Auth routes
	authRoutes := v1.Group("/auth")
	authRoutes.Post("/login", handlers.Login)
	authRoutes.Post("/logout", handlers.Logout)
	authRoutes.Get("/session", handlers.Session)
	authRoutes.Get("/remembered-email", handlers.RememberedEmail)

	adminOnly := AdminMiddleware(m.sessionAdapter)

	// Catalog routes; reads are public, writes require an admin token.
	products := v1.Group("/products")
	products.Get("/", handlers.ListProducts)
	products.Get("/stats", handlers.Stats)
	products.Get("/low-stock", handlers.LowStock)
	products.Post("/search", handlers.AdvancedSearch)
	products.Get("/export", adminOnly, handlers.ExportProducts)
	products.Post("/import", adminOnly, handlers.ImportProducts)
	products.Post("/", adminOnly, handlers.CreateProduct)
	products.Get("/:id", handlers.GetProduct)
	products.Put("/:id", adminOnly, handlers.UpdateProduct)
	products.Delete("/:id", adminOnly, handlers.DeleteProduct)

	// Cart routes
	cartRoutes := v1.Group("/cart")
	cartRoutes.Get("/", handlers.CartItems)
	cartRoutes.Get("/summary", handlers.OrderSummary)
	cartRoutes.Post("/items", handlers.AddToCart)
	cartRoutes.Put("/items/:id", handlers.UpdateCartItem)
	cartRoutes.Delete("/items/:id", handlers.RemoveCartItem)
	cartRoutes.Delete("/", handlers.ClearCart)

	// Theme preference
	v1.Get("/theme", handlers.GetTheme)
	v1.Put("/theme", handlers.SetTheme)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
