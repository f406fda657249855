package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"whitepaper_billing/internal/adapter/http/handlers/mocks"
	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase"
)

func TestPaymentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unwraps payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.Create)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.Payment, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("envelope not unwrapped: %v", req)
				}
				return entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Status: entities.PaymentStatusApproved}, nil
			},
		)

		body := `{"payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invoice already paid maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.Create)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrInvoiceNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.Create)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/invoices/:id/payments", h.List)

	uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "pay-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}
