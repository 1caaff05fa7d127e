package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket_checkout/internal/adapter/http/handlers/mocks"
	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRegistrationHandler_GetRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		reg    entities.Registration
		err    error
		status int
	}{
		{name: "found", reg: entities.Registration{ID: "reg-1", PaymentStatus: entities.PaymentStatusFailed, PaymentReason: "declined"}, status: http.StatusOK},
		{name: "not found", err: usecase.ErrRegistrationNotFound, status: http.StatusNotFound},
		{name: "store error", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIRegistrationUseCase(ctrl)
			h := NewRegistrationHandler(uc, mobilemoney.Normalizer{})

			r := gin.New()
			r.GET("/v1/registrations/:id", h.GetRegistration)

			uc.EXPECT().GetByID(gomock.Any(), "reg-1").Return(tc.reg, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/registrations/reg-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.status == http.StatusOK {
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["payment_status"] != "failed" || body["payment_reason"] != "declined" {
					t.Fatalf("unexpected body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestRegistrationHandler_ListEventRegistrations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRegistrationUseCase(ctrl)
	h := NewRegistrationHandler(uc, mobilemoney.Normalizer{})

	r := gin.New()
	r.GET("/v1/events/:event_id/registrations", h.ListEventRegistrations)

	uc.EXPECT().ListByEventID(gomock.Any(), "evt-1").Return([]entities.Registration{{ID: "a"}, {ID: "b"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/events/evt-1/registrations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
