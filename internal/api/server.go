package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/middleware"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// Services are the application services the HTTP layer dispatches to.
type Services struct {
	Auth          AuthService
	BoardingHouse BoardingHouseService
	Room          RoomService
	Catalog       CatalogService
	Tenant        TenantService
	Contract      ContractService
	Invoice       InvoiceService
	Payment       PaymentService
	Notification  NotificationService
	Report        ReportService
	Subscription  SubscriptionService
	Admin         AdminService
	Sweep         SweepRunner
	Dashboard     DashboardService
}

type Server struct {
	auth          *AuthHandler
	boardingHouse *BoardingHouseHandler
	room          *RoomHandler
	catalog       *CatalogHandler
	tenant        *TenantHandler
	contract      *ContractHandler
	invoice       *InvoiceHandler
	payment       *PaymentHandler
	notification  *NotificationHandler
	report        *ReportHandler
	subscription  *SubscriptionHandler
	admin         *AdminHandler
	dashboard     *DashboardHandler
	websocket     *WebSocketHandler
	authMW        *middleware.AuthMiddleware
	rateLimit     *middleware.RateLimitMiddleware
	validation    *middleware.ValidationMiddleware
	config        *config.Config
}

func NewServer(
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	cfg *config.Config,
	logger *logger.Logger,
	subscriber NotificationSubscriber,
) *Server {
	return &Server{
		auth:          NewAuthHandler(services.Auth),
		boardingHouse: NewBoardingHouseHandler(services.BoardingHouse),
		room:          NewRoomHandler(services.Room),
		catalog:       NewCatalogHandler(services.Catalog),
		tenant:        NewTenantHandler(services.Tenant),
		contract:      NewContractHandler(services.Contract),
		invoice:       NewInvoiceHandler(services.Invoice),
		payment:       NewPaymentHandler(services.Payment),
		notification:  NewNotificationHandler(services.Notification),
		report:        NewReportHandler(services.Report),
		subscription:  NewSubscriptionHandler(services.Subscription),
		admin:         NewAdminHandler(services.Admin, services.Sweep),
		dashboard:     NewDashboardHandler(services.Dashboard),
		websocket:     NewWebSocketHandler(logger, subscriber),
		authMW:        auth,
		rateLimit:     rateLimit,
		validation:    validation,
		config:        cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(s.config.MaxRequestBytes))
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	authed := []gin.HandlerFunc{s.authMW.JWTAuth(), s.rateLimit.UserRateLimit()}
	owner := chain(authed, s.authMW.RequireRole(domain.RoleOwner), s.authMW.RequireOwnerAccess())
	ownerOrTenant := chain(authed, s.authMW.RequireRole(domain.RoleOwner, domain.RoleTenant), s.authMW.RequireOwnerAccess())
	requireOwner := s.authMW.RequireRole(domain.RoleOwner)
	requireTenant := s.authMW.RequireRole(domain.RoleTenant)
	requireAdmin := s.authMW.RequireRole(domain.RoleAdmin)

	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
			auth.POST("/forgot-password", s.auth.ForgotPassword)
			auth.POST("/reset-password", s.auth.ResetPassword)

			session := auth.Group("", authed...)
			session.GET("/me", s.auth.Me)
			session.PUT("/password", s.auth.ChangePassword)
			session.POST("/logout", s.auth.Logout)
		}

		houses := api.Group("/boarding-houses", owner...)
		{
			houses.POST("", s.boardingHouse.CreateBoardingHouse)
			houses.GET("", s.boardingHouse.ListBoardingHouses)
			houses.GET("/:id", s.boardingHouse.GetBoardingHouse)
			houses.PUT("/:id", s.boardingHouse.UpdateBoardingHouse)
			houses.DELETE("/:id", s.boardingHouse.DeleteBoardingHouse)
		}

		rooms := api.Group("/rooms", owner...)
		{
			rooms.POST("", s.room.CreateRoom)
			rooms.GET("", s.room.ListRooms)
			rooms.GET("/:id", s.room.GetRoom)
			rooms.PUT("/:id", s.room.UpdateRoom)
			rooms.DELETE("/:id", s.room.DeleteRoom)
			rooms.GET("/:id/services", s.room.ListRoomServices)
			rooms.POST("/:id/services", s.room.AttachService)
			rooms.DELETE("/:id/services/:service_id", s.room.DetachService)
			rooms.POST("/:id/images", s.room.UploadImage)
		}

		services := api.Group("/services", owner...)
		{
			services.POST("", s.catalog.CreateService)
			services.GET("", s.catalog.ListServices)
			services.GET("/:id", s.catalog.GetService)
			services.PUT("/:id", s.catalog.UpdateService)
			services.DELETE("/:id", s.catalog.DeleteService)
		}

		tenants := api.Group("/tenants", owner...)
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/search", s.tenant.SearchTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		contracts := api.Group("/contracts", owner...)
		{
			contracts.POST("", s.contract.CreateContract)
			contracts.GET("", s.contract.ListContracts)
			contracts.GET("/:id", s.contract.GetContract)
			contracts.PUT("/:id", s.contract.UpdateContract)
			contracts.POST("/:id/terminate", s.contract.TerminateContract)
		}

		invoices := api.Group("/invoices", owner...)
		{
			invoices.POST("", s.invoice.CreateInvoice)
			invoices.POST("/generate", s.invoice.GenerateInvoices)
			invoices.GET("", s.invoice.ListInvoices)
			invoices.GET("/export", s.invoice.ExportInvoices)
			invoices.GET("/:id", s.invoice.GetInvoice)
			invoices.PUT("/:id", s.invoice.UpdateInvoice)
			invoices.POST("/:id/cancel", s.invoice.CancelInvoice)
			invoices.DELETE("/:id", s.invoice.DeleteInvoice)
		}

		me := api.Group("/me", chain(authed, requireTenant)...)
		{
			me.GET("/invoices", s.invoice.ListMyInvoices)
			me.GET("/invoices/:id", s.invoice.GetMyInvoice)
		}

		// Stripe calls the webhook without a token; the signature authenticates it.
		api.POST("/payments/webhook", s.payment.Webhook)

		payments := api.Group("/payments", ownerOrTenant...)
		{
			payments.POST("", requireOwner, s.payment.RecordPayment)
			payments.GET("", s.payment.ListPayments)
			payments.GET("/:id", s.payment.GetPayment)
			payments.POST("/intents", s.payment.CreateIntent)
			payments.POST("/confirm", s.payment.ConfirmPayment)
		}

		notifications := api.Group("/notifications", authed...)
		{
			notifications.GET("", s.notification.ListNotifications)
			notifications.GET("/unread-count", s.notification.UnreadCount)
			notifications.PUT("/read-all", s.notification.MarkAllRead)
			notifications.PUT("/:id/read", s.notification.MarkRead)
			notifications.GET("/stream", s.websocket.HandleWebSocket)
		}

		reports := api.Group("/reports", ownerOrTenant...)
		{
			reports.POST("", requireTenant, s.report.CreateReport)
			reports.GET("", s.report.ListReports)
			reports.GET("/:id", s.report.GetReport)
			reports.PUT("/:id", requireOwner, s.report.UpdateReport)
		}

		adminReports := api.Group("/admin-reports", chain(authed, s.authMW.RequireRole(domain.RoleOwner, domain.RoleAdmin))...)
		{
			adminReports.POST("", requireOwner, s.report.CreateAdminReport)
			adminReports.GET("", s.report.ListAdminReports)
			adminReports.GET("/:id", s.report.GetAdminReport)
			adminReports.PUT("/:id", requireAdmin, s.report.RespondAdminReport)
		}

		// Owners must be able to redeem a key after their subscription lapsed.
		subscriptions := api.Group("/subscriptions", chain(authed, requireOwner)...)
		{
			subscriptions.POST("/redeem", s.subscription.Redeem)
			subscriptions.GET("/current", s.subscription.Current)
			subscriptions.GET("", s.subscription.ListSubscriptions)
		}

		api.GET("/dashboard", chain(owner, s.dashboard.OwnerDashboard)...)

		admin := api.Group("/admin", chain(authed, requireAdmin)...)
		{
			admin.GET("/owners", s.admin.ListOwners)
			admin.GET("/owners/:id", s.admin.GetOwner)
			admin.POST("/owners/:id/approve", s.admin.ApproveOwner)
			admin.POST("/owners/:id/lock", s.admin.LockOwner)
			admin.POST("/owners/:id/unlock", s.admin.UnlockOwner)
			admin.GET("/users", s.admin.ListUsers)
			admin.GET("/subscriptions", s.subscription.ListSubscriptions)
			admin.POST("/license-keys", s.subscription.GenerateKeys)
			admin.GET("/license-keys", s.subscription.ListKeys)
			admin.POST("/license-keys/:id/revoke", s.subscription.RevokeKey)
			admin.GET("/dashboard", s.dashboard.AdminDashboard)
			admin.POST("/jobs/overdue", s.admin.RunSweep)
		}
	}
}

// chain returns base followed by more without sharing base's backing array.
func chain(base []gin.HandlerFunc, more ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}

// StartWebSocketHub starts the hub that fans notifications out to sockets
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// StopWebSocketHub stops the hub and closes its subscriptions
func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
