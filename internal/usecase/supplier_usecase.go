package usecase

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"strings"
)

// ISupplierUseCase exposes supplier CRUD.
type ISupplierUseCase interface {
	Create(ctx context.Context, in entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id uint) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, id uint, in entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id uint) error
}

type SupplierUseCase struct {
	repo interfaces.ISupplierRepository
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (u *SupplierUseCase) Create(ctx context.Context, in entities.Supplier) (entities.Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Supplier{}, ErrSupplierNameRequired
	}
	in.ID = 0

	created, err := u.repo.Create(ctx, in)
	if err != nil {
		log.Printf("[supplier][usecase] create failed err=%v", err)
		return entities.Supplier{}, err
	}
	return created, nil
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id uint) (entities.Supplier, error) {
	if id == 0 {
		return entities.Supplier{}, ErrInvalidID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == 0 {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) Update(ctx context.Context, id uint, in entities.Supplier) (entities.Supplier, error) {
	if id == 0 {
		return entities.Supplier{}, ErrInvalidID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Supplier{}, ErrSupplierNameRequired
	}
	in.ID = id

	updated, err := u.repo.Update(ctx, in)
	if err != nil {
		return entities.Supplier{}, err
	}
	if updated.ID == 0 {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return updated, nil
}

func (u *SupplierUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSupplierNotFound
	}
	return nil
}
