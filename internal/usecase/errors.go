package usecase

import "furniture_warehouse/pkg"

var (
	ErrInvalidID = pkg.Validation("invalid id")

	ErrSupplierNotFound     = pkg.NotFound("supplier not found")
	ErrSupplierNameRequired = pkg.Validation("supplier name is required")

	ErrClientNotFound     = pkg.NotFound("client not found")
	ErrClientNameRequired = pkg.Validation("client name is required")

	ErrFurnitureNotFound         = pkg.NotFound("furniture not found")
	ErrFurnitureFieldsRequired   = pkg.Validation("name, type and price are required")
	ErrFurnitureNegativePrice    = pkg.Validation("price must not be negative")
	ErrFurnitureNegativeQuantity = pkg.Validation("quantity must be a non-negative number")
	ErrFurnitureSupplierMissing  = pkg.Validation("supplier not found")
	ErrFurnitureQuantityRequired = pkg.Validation("quantity is required")
	ErrFurnitureReadBack         = pkg.Internal("furniture row missing after insert")

	ErrOrderNotFound         = pkg.NotFound("order not found")
	ErrOrderFieldsRequired   = pkg.Validation("client id, date and items are required")
	ErrOrderInvalidDate      = pkg.Validation("date must be formatted as YYYY-MM-DD")
	ErrOrderInvalidStatus    = pkg.Validation("status must be one of pending, completed, cancelled")
	ErrOrderStatusRequired   = pkg.Validation("status is required")
	ErrOrderInvalidItem      = pkg.Validation("each item needs a furniture id, a positive quantity and a non-negative price")
	ErrOrderClientMissing    = pkg.Validation("client not found")
	ErrOrderFurnitureMissing = pkg.Validation("furniture referenced by an item not found")
	ErrOrderReadBack         = pkg.Internal("order row missing after insert")

	ErrUserNotFound             = pkg.NotFound("user not found")
	ErrRegistrationFields       = pkg.Validation("username, email and password are required")
	ErrPasswordTooShort         = pkg.Validation("password must be at least 6 characters")
	ErrPasswordTooLong          = pkg.Validation("password must be at most 72 bytes")
	ErrUserAlreadyExists        = pkg.Conflict("a user with this username or email already exists")
	ErrLoginFieldsRequired      = pkg.Validation("username and password are required")
	ErrInvalidCredentials       = pkg.Auth("invalid credentials")
	ErrProfileFieldsRequired    = pkg.Validation("full_name or email is required")
	ErrEmailTaken               = pkg.Conflict("email is already used by another user")
	ErrPasswordFieldsRequired   = pkg.Validation("current and new password are required")
	ErrCurrentPasswordIncorrect = pkg.Validation("current password is incorrect")
	ErrCannotDeleteSelf         = pkg.Validation("you cannot delete your own account")
	ErrInvalidToken             = pkg.Auth("invalid or expired token")
	ErrAdminRequired            = pkg.Authz("access denied: administrator role required")
)
