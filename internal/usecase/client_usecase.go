package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase/interfaces"
)

var ErrInvalidClient = errors.New("invalid client")

// IClientUseCase exposes client CRUD.
//
// Delete does not cascade to documents; historical invoices and quotes keep
// the client snapshot they were saved with.

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClient
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := validateClient(c); err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	if strings.TrimSpace(c.ID) == "" {
		return entities.Client{}, ErrInvalidClient
	}
	if err := validateClient(c); err != nil {
		return entities.Client{}, err
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClient
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrClientNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validateClient(c entities.Client) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Address) == "" {
		return ErrInvalidClient
	}
	return nil
}
