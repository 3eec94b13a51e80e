package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-retail-api/internal/application/auth"
	"github.com/jhoicas/pos-retail-api/internal/application/order"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/application/report"
	"github.com/jhoicas/pos-retail-api/internal/application/usecase"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	SettingsUC     *usecase.SettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	ActivityUC     *usecase.ActivityUseCase
	OrderUC        *order.UseCase
	QuotationUC    *quotation.UseCase
	ReportUC       *report.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API con su control de acceso por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := []entity.Role{entity.RoleAdmin, entity.RoleShopManager, entity.RoleCashier, entity.RoleInventoryManager}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Users (admin y shop manager)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin, entity.RoleShopManager))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products: el catálogo público lo ve cualquier autenticado; la vista
	// completa y el barcode son de staff; la escritura es de shop manager,
	// inventory manager y admin.
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/catalog", productHandler.ListVisible)
	products.Get("/barcode/:code", RequireRole(staff...), productHandler.GetByBarcode)
	products.Get("/", RequireRole(staff...), productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	productWrite := RequireRole(entity.RoleAdmin, entity.RoleShopManager, entity.RoleInventoryManager)
	products.Post("/", productWrite, productHandler.Create)
	products.Put("/:id", productWrite, productHandler.Update)
	products.Post("/:id/adjust", productWrite, productHandler.AdjustQuantity)
	products.Delete("/:id", productWrite, productHandler.Delete)

	// Cart (customer y cashier)
	cartRoles := RequireRole(entity.RoleCustomer, entity.RoleCashier)
	cart := protected.Group("/cart", cartRoles)
	cartHandler := NewCartHandler(deps.OrderUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/", cartHandler.Add)
	cart.Put("/:productId", cartHandler.UpdateItem)
	cart.Delete("/:productId", cartHandler.RemoveItem)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", RequireRole(entity.RoleCustomer, entity.RoleCashier), orderHandler.Create)
	orders.Get("/mine", orderHandler.ListMine)
	orders.Get("/", RequireRole(entity.RoleAdmin, entity.RoleShopManager, entity.RoleCashier), orderHandler.List)
	orders.Post("/:id/confirm-payment", RequireRole(entity.RoleAdmin, entity.RoleCashier), orderHandler.ConfirmPayment)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Get("/:id", orderHandler.GetByID)

	// Quotations (shop manager; el proveedor tiene su vista de lectura)
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations := protected.Group("/quotations")
	quotations.Get("/supplier/:supplierId", RequireRole(entity.RoleAdmin, entity.RoleShopManager, entity.RoleSupplier), quotationHandler.ListBySupplier)

	quotationWrite := RequireRole(entity.RoleAdmin, entity.RoleShopManager)
	quotations.Post("/", quotationWrite, quotationHandler.Create)
	quotations.Get("/", quotationWrite, quotationHandler.List)
	quotations.Post("/:id/send", quotationWrite, quotationHandler.Send)
	quotations.Get("/:id", quotationWrite, quotationHandler.GetByID)
	quotations.Delete("/:id", quotationWrite, quotationHandler.Delete)

	// Suppliers (admin y shop manager)
	suppliers := protected.Group("/suppliers", RequireRole(entity.RoleAdmin, entity.RoleShopManager))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Reports y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleShopManager, entity.RoleInventoryManager))
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales.csv", reportHandler.SalesCSV)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory.csv", reportHandler.InventoryCSV)
	protected.Get("/dashboard", reportHandler.Dashboard)

	// Settings (cualquier autenticado)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Put("/theme", settingsHandler.UpdateTheme)

	// Notifications (cualquier autenticado)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Activity log (solo admin)
	activity := protected.Group("/activity", RequireRole(entity.RoleAdmin))
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Get("/", activityHandler.ListRecent)
	activity.Get("/user/:userId", activityHandler.ListByUser)
}
