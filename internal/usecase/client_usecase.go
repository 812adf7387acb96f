package usecase

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"strings"
)

// IClientUseCase exposes client CRUD.
type IClientUseCase interface {
	Create(ctx context.Context, in entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id uint) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, id uint, in entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id uint) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in entities.Client) (entities.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	in.ID = 0

	created, err := u.repo.Create(ctx, in)
	if err != nil {
		log.Printf("[client][usecase] create failed err=%v", err)
		return entities.Client{}, err
	}
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id uint) (entities.Client, error) {
	if id == 0 {
		return entities.Client{}, ErrInvalidID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if s.ID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	return s, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, id uint, in entities.Client) (entities.Client, error) {
	if id == 0 {
		return entities.Client{}, ErrInvalidID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	in.ID = id

	updated, err := u.repo.Update(ctx, in)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}
