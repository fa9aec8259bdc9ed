package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/api"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/service"
	"github.com/upsaclinic/clinic-admin/internal/infrastructure/config"
	"github.com/upsaclinic/clinic-admin/internal/infrastructure/memory"
	"github.com/upsaclinic/clinic-admin/pkg/logger"
)

// @title           UPSA Clinic Admin API
// @version         1.0
// @description     Session, access control and administration API for the UPSA clinic.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores (all in-memory, seeded with the demo data set) ---
	credentialStore := memory.NewCredentialStore(memory.DefaultCredentials())
	sessionStore := memory.NewSessionStore()
	patientStore := memory.NewPatientStore()
	doctorStore := memory.NewDoctorStore()
	appointmentStore := memory.NewAppointmentStore()
	invoiceStore := memory.NewInvoiceStore()
	drugStore := memory.NewDrugStore()
	messageStore := memory.NewMessageStore()
	vitalsStore := memory.NewVitalsStore()
	bedStore := memory.NewBedStore()
	settingsStore := memory.NewSettingsStore()

	// --- Services ---
	authService := service.NewAuthService(credentialStore, sessionStore,
		cfg.JWTSecret, cfg.SessionTTL, logger.Component("auth"))
	accessController := service.NewAccessController(domain.DefaultPermissionTable())
	navigator := service.NewNavigator(sessionStore, accessController, logger.Component("navigator"))

	patientService := service.NewPatientService(patientStore, logger.Component("patients"))
	doctorService := service.NewDoctorService(doctorStore, logger.Component("doctors"))
	appointmentService := service.NewAppointmentService(appointmentStore, logger.Component("appointments"))
	billingService := service.NewBillingService(invoiceStore, logger.Component("billing"))
	pharmacyService := service.NewPharmacyService(drugStore, logger.Component("pharmacy"))
	messageService := service.NewMessageService(messageStore, logger.Component("messages"))
	vitalsService := service.NewVitalsService(vitalsStore, logger.Component("vitals"))
	bedService := service.NewBedService(bedStore, cfg.BedCapacity, logger.Component("beds"))
	settingsService := service.NewSettingsService(settingsStore, logger.Component("settings"))
	dashboardService := service.NewDashboardService(
		patientService, doctorService, appointmentService, billingService,
		pharmacyService, messageService, vitalsService, bedService)

	e := api.NewRouter(api.Dependencies{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,

		Auth:         authService,
		Access:       accessController,
		Navigator:    navigator,
		Patients:     patientService,
		Doctors:      doctorService,
		Appointments: appointmentService,
		Billing:      billingService,
		Pharmacy:     pharmacyService,
		Messages:     messageService,
		Vitals:       vitalsService,
		Beds:         bedService,
		Settings:     settingsService,
		Dashboard:    dashboardService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting clinic admin server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
