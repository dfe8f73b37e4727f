package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/notification"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Orders        *ordering.OrderManager
	Invoices      *billing.InvoiceAggregator
	InvoicePDF    *billing.PDFUseCase
	Dispatches    *billing.DispatchUseCase
	Notifications *notification.UseCase
	ClientUC      *usecase.ClientUseCase
	ProductUC     *usecase.ProductUseCase
	StoreUC       *usecase.StoreUseCase
	UserUC        *usecase.UserUseCase
	RoleUC        *usecase.RoleUseCase
	DB            Pinger
	Storage       string
}

// crud rutas estándar de un recurso.
type crud interface {
	Create(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func mount(r fiber.Router, path string, h crud) fiber.Router {
	g := r.Group(path)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return g
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.DB, deps.Storage))

	api := app.Group("/api")

	mount(api, "/orders", NewOrderHandler(deps.Orders))

	invoiceHandler := NewInvoiceHandler(deps.Invoices, deps.InvoicePDF)
	invoices := mount(api, "/invoices", invoiceHandler)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	mount(api, "/invoice-dispatches", NewDispatchHandler(deps.Dispatches))

	mount(api, "/clients", NewClientHandler(deps.ClientUC))
	mount(api, "/products", NewProductHandler(deps.ProductUC))
	mount(api, "/stores", NewStoreHandler(deps.StoreUC))
	mount(api, "/users", NewUserHandler(deps.UserUC))
	mount(api, "/roles", NewRoleHandler(deps.RoleUC))

	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications.Post("/email", notificationHandler.SendEmail)
	notifications.Post("/sms", notificationHandler.SendSMS)
}
