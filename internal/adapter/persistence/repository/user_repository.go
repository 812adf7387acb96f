package repository

import (
	"context"
	"fmt"
	"time"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// UserRepository persists API accounts. Username and email carry unique
// indexes; violations surface as interfaces.ErrDuplicateKey.
type UserRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	row := userRow{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         string(u.Role),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, fmt.Errorf("insert user: %w", interfaces.ErrDuplicateKey)
		}
		return entities.User{}, fmt.Errorf("insert user: %w", err)
	}
	return fromUserRow(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (entities.User, error) {
	return firstUser(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByLogin matches either the username or the email.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (entities.User, error) {
	return firstUser(r.db.WithContext(ctx).Where("username = ? OR email = ?", login, login))
}

func firstUser(q *gorm.DB) (entities.User, error) {
	var row userRow
	err := q.First(&row).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("get user: %w", err)
	}
	return fromUserRow(row), nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Where("username = ? OR email = ?", username, email).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, fullName, email *string) (entities.User, error) {
	changes := map[string]any{"updated_at": time.Now()}
	if fullName != nil {
		changes["full_name"] = *fullName
	}
	if email != nil {
		changes["email"] = *email
	}

	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return entities.User{}, fmt.Errorf("update user: %w", interfaces.ErrDuplicateKey)
		}
		return entities.User{}, fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.User{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(map[string]any{
		"password":   passwordHash,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return false, fmt.Errorf("update password: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Update("updated_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Scopes(newestFirst("users")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromUserRow(row))
	}
	return out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&userRow{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Where("role = ?", string(entities.RoleAdmin)).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return n > 0, nil
}
