package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/upsaclinic/clinic-admin/docs"
	"github.com/upsaclinic/clinic-admin/internal/api/handler"
	"github.com/upsaclinic/clinic-admin/internal/api/middleware"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// Dependencies bundles everything the router wires into handlers. All
// services are constructed in main; the router only mounts them.
type Dependencies struct {
	JWTSecret string
	Logger    zerolog.Logger

	Auth         ports.AuthService
	Access       ports.AccessController
	Navigator    ports.Navigator
	Patients     ports.PatientService
	Doctors      ports.DoctorService
	Appointments ports.AppointmentService
	Billing      ports.BillingService
	Pharmacy     ports.PharmacyService
	Messages     ports.MessageService
	Vitals       ports.VitalsService
	Beds         ports.BedService
	Settings     ports.SettingsService
	Dashboard    ports.DashboardService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Access)
	navHandler := handler.NewNavigationHandler(deps.Navigator)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	patientHandler := handler.NewPatientHandler(deps.Patients)
	doctorHandler := handler.NewDoctorHandler(deps.Doctors)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	billingHandler := handler.NewBillingHandler(deps.Billing)
	pharmacyHandler := handler.NewPharmacyHandler(deps.Pharmacy)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	vitalsHandler := handler.NewVitalsHandler(deps.Vitals)
	bedHandler := handler.NewBedHandler(deps.Beds)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	healthHandler := handler.NewHealthHandler()

	authRequired := middleware.Auth(deps.JWTSecret, deps.Auth)
	section := func(s domain.Section) echo.MiddlewareFunc {
		return middleware.Section(deps.Navigator, s)
	}

	// --- Open routes ---
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.POST("/auth/login", authHandler.Login)

	// --- Session routes ---
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	v1 := e.Group("/v1", authRequired)
	v1.GET("/navigation", navHandler.Current)
	v1.POST("/navigation", navHandler.Navigate)

	// Each section group re-checks role access and records the navigation.
	dashboard := v1.Group("/dashboard", section(domain.SectionDashboard))
	dashboard.GET("", dashboardHandler.Stats)

	patients := v1.Group("/patients", section(domain.SectionPatients))
	patients.GET("", patientHandler.List)
	patients.POST("", patientHandler.Create)
	patients.GET("/:id", patientHandler.Get)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Delete)

	doctors := v1.Group("/doctors", section(domain.SectionDoctors))
	doctors.GET("", doctorHandler.List)
	doctors.POST("", doctorHandler.Create)
	doctors.GET("/:id", doctorHandler.Get)
	doctors.PUT("/:id", doctorHandler.Update)
	doctors.DELETE("/:id", doctorHandler.Delete)

	appointments := v1.Group("/appointments", section(domain.SectionAppointments))
	appointments.GET("", appointmentHandler.List)
	appointments.POST("", appointmentHandler.Schedule)
	appointments.POST("/:id/complete", appointmentHandler.Complete)
	appointments.POST("/:id/cancel", appointmentHandler.Cancel)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	billing := v1.Group("/billing", section(domain.SectionBilling))
	billing.GET("/invoices", billingHandler.List)
	billing.POST("/invoices", billingHandler.Create)
	billing.PUT("/invoices/:invoice_no/status", billingHandler.SetStatus)
	billing.DELETE("/invoices/:invoice_no", billingHandler.Delete)

	pharmacy := v1.Group("/pharmacy", section(domain.SectionPharmacy))
	pharmacy.GET("/drugs", pharmacyHandler.List)
	pharmacy.POST("/drugs", pharmacyHandler.Add)
	pharmacy.POST("/drugs/:id/dispense", pharmacyHandler.Dispense)
	pharmacy.POST("/drugs/:id/restock", pharmacyHandler.Restock)
	pharmacy.DELETE("/drugs/:id", pharmacyHandler.Delete)

	messages := v1.Group("/messages", section(domain.SectionMessages))
	messages.GET("", messageHandler.List)
	messages.POST("", messageHandler.Send)
	messages.POST("/:id/read", messageHandler.MarkRead)
	messages.DELETE("/:id", messageHandler.Delete)

	vitals := v1.Group("/vitals", section(domain.SectionVitals))
	vitals.GET("", vitalsHandler.List)
	vitals.POST("", vitalsHandler.Record)

	beds := v1.Group("/beds", section(domain.SectionBeds))
	beds.GET("", bedHandler.List)
	beds.POST("", bedHandler.Assign)
	beds.POST("/:bed_no/transfer", bedHandler.Transfer)
	beds.DELETE("/:bed_no", bedHandler.Discharge)

	settings := v1.Group("/settings", section(domain.SectionSettings))
	settings.GET("", settingsHandler.Get)
	settings.PUT("", settingsHandler.Update)

	return e
}
