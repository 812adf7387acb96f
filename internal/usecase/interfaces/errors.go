package interfaces

import "errors"

// Errors repositories return (possibly wrapped) so use cases can classify
// store failures without depending on a driver.
var (
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrMissingClient    = errors.New("referenced client does not exist")
	ErrMissingFurniture = errors.New("referenced furniture does not exist")
	ErrMissingSupplier  = errors.New("referenced supplier does not exist")
)
