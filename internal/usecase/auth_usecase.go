package usecase

import (
	"context"
	"errors"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"strings"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// ProfileInput lists the profile fields a user may change. Nil means unchanged.
type ProfileInput struct {
	FullName *string
	Email    *string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  entities.User
}

// IAuthUseCase covers credential issuance, profile management and the
// administrative user operations.
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, login, password string) (AuthResult, error)
	VerifyToken(token string) (entities.TokenClaims, error)
	Profile(ctx context.Context, userID uint) (entities.User, error)
	UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (entities.User, error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, actorID, targetID uint) error
	EnsureAdmin(ctx context.Context, in RegisterInput) (entities.User, bool, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a regular user. Administrators are only created by EnsureAdmin.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return AuthResult{}, ErrRegistrationFields
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return AuthResult{}, err
	}

	user, err := u.createUser(ctx, in, entities.RoleUser)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := u.tokens.Issue(entities.ClaimsFor(user))
	if err != nil {
		return AuthResult{}, err
	}
	log.Printf("[auth][usecase] register success user_id=%d username=%s", user.ID, user.Username)
	return AuthResult{Token: token, User: user}, nil
}

func (u *AuthUseCase) createUser(ctx context.Context, in RegisterInput, role entities.Role) (entities.User, error) {
	exists, err := u.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if exists {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	user, err := u.users.Create(ctx, entities.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         role,
	})
	if err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.User{}, ErrUserAlreadyExists
		}
		return entities.User{}, err
	}
	return user, nil
}

// Login accepts a username or an email. Unknown accounts and wrong passwords
// produce the same error.
func (u *AuthUseCase) Login(ctx context.Context, login, password string) (AuthResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return AuthResult{}, ErrLoginFieldsRequired
	}

	user, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == 0 {
		log.Printf("[auth][usecase] login rejected reason=unknown_user")
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Printf("[auth][usecase] login rejected reason=bad_password user_id=%d", user.ID)
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(entities.ClaimsFor(user))
	if err != nil {
		return AuthResult{}, err
	}
	if err := u.users.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("[auth][usecase] touch last login failed user_id=%d err=%v", user.ID, err)
	}
	return AuthResult{Token: token, User: user}, nil
}

func (u *AuthUseCase) VerifyToken(token string) (entities.TokenClaims, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return entities.TokenClaims{}, ErrInvalidToken
	}
	return claims, nil
}

func (u *AuthUseCase) Profile(ctx context.Context, userID uint) (entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (entities.User, error) {
	fullName := trimmedOrNil(in.FullName)
	email := trimmedOrNil(in.Email)
	if fullName == nil && email == nil {
		return entities.User{}, ErrProfileFieldsRequired
	}

	user, err := u.users.UpdateProfile(ctx, userID, fullName, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.User{}, ErrEmailTaken
		}
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if current == "" || next == "" {
		return ErrPasswordFieldsRequired
	}
	if err := checkPasswordLength(next); err != nil {
		return err
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return ErrUserNotFound
	}
	if err := u.hasher.Compare(user.PasswordHash, current); err != nil {
		return ErrCurrentPasswordIncorrect
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}
	found, err := u.users.UpdatePassword(ctx, userID, hash)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	log.Printf("[auth][usecase] password changed user_id=%d", userID)
	return nil
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.users.List(ctx)
}

func (u *AuthUseCase) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if targetID == 0 {
		return ErrInvalidID
	}
	if targetID == actorID {
		return ErrCannotDeleteSelf
	}
	found, err := u.users.Delete(ctx, targetID)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	log.Printf("[auth][usecase] user deleted user_id=%d by=%d", targetID, actorID)
	return nil
}

// EnsureAdmin creates an administrator unless one already exists. The boolean
// reports whether a new account was created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, in RegisterInput) (entities.User, bool, error) {
	has, err := u.users.HasAdmin(ctx)
	if err != nil {
		return entities.User{}, false, err
	}
	if has {
		return entities.User{}, false, nil
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return entities.User{}, false, err
	}
	user, err := u.createUser(ctx, in, entities.RoleAdmin)
	if err != nil {
		return entities.User{}, false, err
	}
	return user, true, nil
}

func checkPasswordLength(password string) error {
	switch {
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
