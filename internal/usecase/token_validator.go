package usecase

import (
	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is the caller a bearer token vouches for.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator verifies bearer tokens for the auth middleware. Tokens are
// issued elsewhere; only the signature, expiry and role are checked here.
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, errs.Mark(err, jwt.ErrInvalidToken)
	}

	return Identity{UserID: claims.UserID, Role: role}, nil
}
