package handlers

import (
	"log"
	"net/http"

	request "ticket_checkout/internal/adapter/http/dto/request"
	response "ticket_checkout/internal/adapter/http/dto/response"
	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase"
	"ticket_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// CheckoutHandler handles HTTP requests for ticket checkouts.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	phones  mobilemoney.Normalizer
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, phones mobilemoney.Normalizer) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, phones: phones}
}

// StartCheckout godoc
// @Summary      Start a ticket checkout
// @Description  Registers a participant and, for paid tickets, starts the mobile money collection. Confirmation continues in the background.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        event_id  path      string                    true  "Event ID"
// @Param        request   body      request.CheckoutRequest   true  "Checkout form"
// @Success      201       {object}  response.CheckoutResponse "free ticket confirmed"
// @Success      202       {object}  response.CheckoutResponse "payment pending confirmation"
// @Success      200       {object}  response.CheckoutResponse "payment declined by the provider"
// @Failure      400       {object}  pkg.HTTPError
// @Failure      502       {object}  response.CheckoutResponse "payment failed to start"
// @Failure      500       {object}  pkg.HTTPError
// @Router       /events/{event_id}/checkout [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	eventID := c.Param("event_id")
	log.Printf("[checkout][handler] start event_id=%s", eventID)

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload event_id=%s err=%v", eventID, err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.StartCheckout(c.Request.Context(), payload.ToInput(eventID))
	if err != nil {
		log.Printf("[checkout][handler] start failed event_id=%s err=%v", eventID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] start done event_id=%s registration_id=%s state=%s", eventID, res.Registration.ID, res.State)

	c.JSON(checkoutStatusCode(res), response.FromCheckoutResult(res, h.phones))
}

// ResumeCheckout godoc
// @Summary      Resume payment confirmation
// @Description  Restarts background confirmation for a pending registration using its stored references.
// @Tags         checkout
// @Produce      json
// @Param        registration_id  path      string  true  "Registration ID"
// @Success      200              {object}  response.CheckoutResponse "already settled"
// @Success      202              {object}  response.CheckoutResponse "confirmation running"
// @Failure      400              {object}  pkg.HTTPError
// @Failure      404              {object}  pkg.HTTPError
// @Router       /checkouts/{registration_id}/resume [post]
func (h *CheckoutHandler) ResumeCheckout(c *gin.Context) {
	id := c.Param("registration_id")
	log.Printf("[checkout][handler] resume registration_id=%s", id)

	res, err := h.usecase.ResumeCheckout(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checkout][handler] resume failed registration_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if res.State == entities.CheckoutStateVerifying {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromCheckoutResult(res, h.phones))
}

// CancelCheckout godoc
// @Summary      Stop payment confirmation
// @Description  Stops the background confirmation session. The registration's payment status is not changed.
// @Tags         checkout
// @Param        registration_id  path  string  true  "Registration ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkouts/{registration_id} [delete]
func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	id := c.Param("registration_id")
	if err := h.usecase.CancelCheckout(id); err != nil {
		log.Printf("[checkout][handler] cancel failed registration_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyConfirmation godoc
// @Summary      Apply a pushed payment status
// @Description  Settles a pending registration from a gateway-shaped status payload received outside the polling loop.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Registration ID"
// @Param        payload  body      object  true  "Gateway status payload, raw or wrapped in gateway_payload"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /registrations/{id}/confirmations [post]
func (h *CheckoutHandler) ApplyConfirmation(c *gin.Context) {
	id := c.Param("id")

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	payload, err := request.ReadConfirmationPayload(raw)
	if err != nil {
		log.Printf("[checkout][handler] invalid confirmation registration_id=%s err=%v", id, err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ApplyConfirmation(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[checkout][handler] confirmation failed registration_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] confirmation applied registration_id=%s state=%s", id, res.State)

	c.JSON(http.StatusOK, response.FromCheckoutResult(res, h.phones))
}

func checkoutStatusCode(res usecase.CheckoutResult) int {
	switch {
	case res.InitiationFailed:
		return http.StatusBadGateway
	case res.State == entities.CheckoutStateVerifying:
		return http.StatusAccepted
	case res.State == entities.CheckoutStateConfirmed && res.Registration.IsFree():
		return http.StatusCreated
	}
	return http.StatusOK
}
