package usecase

import (
	"vas-broker/internal/domain/user"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

// ValidateToken fails with jwt.ErrInvalidToken for unknown roles too, so the
// middleware answers every bad credential with the same 401.
func (v *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrapf(err, "token for %s", claims.UserID), jwt.ErrInvalidToken)
	}
	return claims.UserID, role, nil
}
