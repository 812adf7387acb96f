package interfaces

import "furniture_warehouse/internal/domain/entities"

// IPasswordHasher hashes and verifies passwords. Compare returns a non-nil
// error when the password does not match the hash.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ITokenIssuer signs and verifies bearer tokens.
type ITokenIssuer interface {
	Issue(claims entities.TokenClaims) (string, error)
	Verify(token string) (entities.TokenClaims, error)
}
