package commands

import (
	"context"

	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/jwt"
	"cuponera/internal/pkg/password"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUnknownRole        = errs.New("unknown account role")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccountID   uuid.UUID
	Role        jwt.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	accounts   queries.AccountReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(accounts queries.AccountReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		accounts:   accounts,
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, passwordHash, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and bad password are indistinguishable to the caller.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(passwordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := jwt.Role(account.Role)
	switch role {
	case jwt.RoleCustomer, jwt.RoleMerchant:
	default:
		return nil, ErrUnknownRole
	}

	token, err := u.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccountID:   account.ID,
		Role:        role,
		AccessToken: token,
	}, nil
}
