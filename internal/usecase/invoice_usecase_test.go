package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"whitepaper_billing/internal/domain/entities"
	mock_interfaces "whitepaper_billing/internal/usecase/interfaces/mocks"
)

func newInvoiceUseCase(ctrl *gomock.Controller) (*InvoiceUseCase, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockICompanySettingsRepository) {
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
	settingsRepo := mock_interfaces.NewMockICompanySettingsRepository(ctrl)
	uc := NewInvoiceUseCase(repo, clientRepo, settingsRepo)
	uc.now = func() time.Time { return testNow }
	return uc, repo, clientRepo, settingsRepo
}

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newInvoiceUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "inv-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newInvoiceUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.GetByID(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newInvoiceUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)

		inv, err := uc.GetByID(context.Background(), " inv-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}

func TestInvoiceUseCase_Save(t *testing.T) {
	t.Run("missing client id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		draft := validInvoiceDraft()
		draft.ClientID = ""

		_, err := uc.Save(context.Background(), draft)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clientRepo, _ := newInvoiceUseCase(ctrl)
		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, err := uc.Save(context.Background(), validInvoiceDraft())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("invalid draft does not reach repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clientRepo, settingsRepo := newInvoiceUseCase(ctrl)
		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(testClient, nil)
		settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings, nil)

		draft := validInvoiceDraft()
		draft.Items = nil

		_, err := uc.Save(context.Background(), draft)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
	})

	t.Run("save success recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, settingsRepo := newInvoiceUseCase(ctrl)
		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(testClient, nil)
		settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Client.ID != "client-1" || len(inv.Items) != 2 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if !inv.Total.Equal(inv.Subtotal.Add(inv.TaxTotal)) {
					t.Fatalf("totals inconsistent: %+v", inv)
				}
				return inv, nil
			},
		)

		inv, err := uc.Save(context.Background(), validInvoiceDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("edit replaces full item set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, settingsRepo := newInvoiceUseCase(ctrl)
		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(testClient, nil)
		settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings, nil)

		// The original invoice had two items; the edit resubmits one.
		draft := validInvoiceDraft()
		draft.ID = "inv-1"
		draft.Items = draft.Items[:1]

		createdAt := testNow.AddDate(0, -1, 0)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", CreatedAt: createdAt}, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if len(inv.Items) != 1 {
					t.Fatalf("expected exactly 1 item after edit, got %d", len(inv.Items))
				}
				if !inv.Total.Equal(decimalFromFloat(230)) {
					t.Fatalf("total = %s, want 230 for the remaining item", inv.Total)
				}
				if !inv.CreatedAt.Equal(createdAt) {
					t.Fatalf("expected original CreatedAt preserved, got %v", inv.CreatedAt)
				}
				return inv, nil
			},
		)

		if _, err := uc.Save(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newInvoiceUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		if err := uc.Delete(context.Background(), "inv-1"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newInvoiceUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		if err := uc.Delete(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
