package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shipra/internal/config"
	"github.com/example/shipra/internal/handlers"
	"github.com/example/shipra/internal/middleware"
	"github.com/example/shipra/internal/services"
	"github.com/example/shipra/internal/store"
)

// Register wires up all HTTP routes. Provider adapters are constructed once
// here and handed to the handlers by reference.
func Register(app *fiber.App, st *store.Store, cfg *config.Config) {
	googleService := services.NewGoogleService(cfg.GoogleClientID)
	whatsappService := services.NewWhatsAppService(cfg.TwilioSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	razorpayService := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	authHandler := handlers.NewAuthHandler(st, cfg, googleService, whatsappService)
	bookingHandler := handlers.NewBookingHandler(st, razorpayService)
	fleetHandler := handlers.NewFleetHandler(st)
	profileHandler := handlers.NewProfileHandler(st)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Shipra Backend API is running...")
	})

	api := app.Group("/api", middleware.SimulatedLatency(cfg.MockDelay))

	auth := api.Group("/auth")
	auth.Post("/google", authHandler.GoogleLogin)
	auth.Post("/whatsapp/send", authHandler.SendWhatsAppCode)
	auth.Post("/whatsapp/verify", authHandler.VerifyWhatsAppCode)

	api.Get("/locations", fleetHandler.ListLocations)
	api.Get("/birds/available", fleetHandler.ListAvailableBirds)

	api.Post("/bookings", bookingHandler.CreateBooking)
	api.Get("/bookings/history", bookingHandler.GetHistory)
	api.Get("/bookings/:id", bookingHandler.GetBookingStatus)
	api.Post("/bookings/:id/status", middleware.AuthMiddleware(cfg), bookingHandler.UpdateBookingStatus)

	api.Get("/user/profile", profileHandler.GetUserProfile)
}
