package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"whitepaper_billing/internal/domain/entities"
	mock_interfaces "whitepaper_billing/internal/usecase/interfaces/mocks"
)

func validClient() entities.Client {
	return entities.Client{
		ID:      "cli-1",
		Name:    "Acme Ltd",
		Email:   "billing@acme.test",
		Phone:   "+27 11 555 0100",
		Address: "1 Main Rd, Cape Town",
	}
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

		_, err := NewClientUseCase(repo).GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(validClient(), nil)

		c, err := NewClientUseCase(repo).GetByID(context.Background(), " cli-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cli-1" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		for _, c := range []entities.Client{
			{Email: "a@b.test", Address: "addr"},
			{Name: "Acme", Address: "addr"},
			{Name: "Acme", Email: "a@b.test"},
		} {
			if _, err := uc.Create(context.Background(), c); !errors.Is(err, ErrInvalidClient) {
				t.Fatalf("expected ErrInvalidClient for %+v, got %v", c, err)
			}
		}
	})

	t.Run("assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" {
					t.Fatal("expected generated id")
				}
				return c, nil
			},
		)

		in := validClient()
		in.ID = ""
		c, err := NewClientUseCase(repo).Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Acme Ltd" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := NewClientUseCase(repo).Update(context.Background(), validClient())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(validClient(), nil)
		updated := validClient()
		updated.Name = "Acme Holdings"
		repo.EXPECT().Update(gomock.Any(), updated).Return(updated, nil)

		c, err := NewClientUseCase(repo).Update(context.Background(), updated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Acme Holdings" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

		err := NewClientUseCase(repo).Delete(context.Background(), "missing")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(validClient(), nil)
		repo.EXPECT().Delete(gomock.Any(), "cli-1").Return(nil)

		if err := NewClientUseCase(repo).Delete(context.Background(), "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettingsUseCase_Update(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.Update(context.Background(), entities.CompanySettings{})
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
	})

	t.Run("defaults blank prefixes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanySettingsRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.CompanySettings{})).DoAndReturn(
			func(_ context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
				if s.InvoicePrefix != "INV-" || s.QuotePrefix != "QTE-" {
					t.Fatalf("prefixes not defaulted: %+v", s)
				}
				return s, nil
			},
		)

		_, err := NewSettingsUseCase(repo).Update(context.Background(), entities.CompanySettings{Name: "White Paper Systems"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
