package routes

import (
	"ticket_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents        = "/events"
	PathCheckouts     = "/checkouts"
	PathRegistrations = "/registrations"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, registrationHandler *handlers.RegistrationHandler) {
	events := rg.Group(PathEvents)
	{
		events.POST("/:event_id/checkout", checkoutHandler.StartCheckout)
		events.GET("/:event_id/registrations", registrationHandler.ListEventRegistrations)
	}

	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.DELETE("/:registration_id", checkoutHandler.CancelCheckout)
		checkouts.POST("/:registration_id/resume", checkoutHandler.ResumeCheckout)
	}

	registrations := rg.Group(PathRegistrations)
	{
		registrations.GET("/:id", registrationHandler.GetRegistration)
		registrations.POST("/:id/confirmations", checkoutHandler.ApplyConfirmation)
	}
}
