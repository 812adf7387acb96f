package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// IUserRepository abstracts relational persistence for User.
//
// Create and UpdateProfile fail with ErrDuplicateKey when username or email is taken.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id uint) (entities.User, error)
	FindByLogin(ctx context.Context, login string) (entities.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uint, fullName, email *string) (entities.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) (bool, error)
	TouchLastLogin(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
	HasAdmin(ctx context.Context) (bool, error)
}
