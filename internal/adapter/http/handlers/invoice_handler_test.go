package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"whitepaper_billing/internal/adapter/http/handlers/mocks"
	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase"
)

func invoiceRequestBody() string {
	return `{
		"client_id": "cli-1",
		"issue_date": "2024-01-05T00:00:00Z",
		"due_date": "2024-02-04T00:00:00Z",
		"items": [{"description": "Consulting", "quantity": 2, "unit_price": 100, "tax_rate": 15}]
	}`
}

func TestInvoiceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/invoices", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure carries field detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.Create)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.FieldErrors{
			{Field: "items", Message: "at least one item is required"},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(invoiceRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if body["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
		if body["details"] == nil {
			t.Fatalf("expected field details in body: %v", body)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.Create)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(invoiceRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.Create)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, draft usecase.InvoiceDraft) (entities.Invoice, error) {
				if draft.ID != "" {
					t.Fatalf("create must not carry an id, got %q", draft.ID)
				}
				if draft.ClientID != "cli-1" || len(draft.Items) != 1 {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.Invoice{
					ID:     "inv-1",
					Number: "INV-20240105-001",
					Status: entities.InvoiceStatusDraft,
					Total:  decimal.NewFromInt(230),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(invoiceRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if body["number"] != "INV-20240105-001" || body["total"] != float64(230) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes path id to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/v1/invoices/:id", h.Update)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, draft usecase.InvoiceDraft) (entities.Invoice, error) {
				if draft.ID != "inv-1" {
					t.Fatalf("expected draft id inv-1, got %q", draft.ID)
				}
				return entities.Invoice{ID: "inv-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/invoices/inv-1", bytes.NewBufferString(invoiceRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.DELETE("/v1/invoices/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
			{ID: "inv-1", IssueDate: time.Now()},
			{ID: "inv-2", IssueDate: time.Now()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(body))
		}
	})
}
