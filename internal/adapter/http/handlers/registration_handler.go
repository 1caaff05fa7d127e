package handlers

import (
	"log"
	"net/http"

	response "ticket_checkout/internal/adapter/http/dto/response"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler serves registration lookups.
type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
	phones  mobilemoney.Normalizer
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase, phones mobilemoney.Normalizer) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc, phones: phones}
}

// GetRegistration godoc
// @Summary      Get a registration
// @Tags         registrations
// @Produce      json
// @Param        id   path      string  true  "Registration ID"
// @Success      200  {object}  response.RegistrationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /registrations/{id} [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id := c.Param("id")

	reg, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checkout][handler] get registration failed registration_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegistration(reg, h.phones))
}

// ListEventRegistrations godoc
// @Summary      List registrations of an event
// @Tags         registrations
// @Produce      json
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {array}   response.RegistrationResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /events/{event_id}/registrations [get]
func (h *RegistrationHandler) ListEventRegistrations(c *gin.Context) {
	eventID := c.Param("event_id")

	regs, err := h.usecase.ListByEventID(c.Request.Context(), eventID)
	if err != nil {
		log.Printf("[checkout][handler] list registrations failed event_id=%s err=%v", eventID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegistrations(regs, h.phones))
}
