package response

import (
	"cuponera/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccountID   uuid.UUID `json:"accountId"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccountID:   result.AccountID,
		Role:        result.Role.String(),
		AccessToken: result.AccessToken,
	}
}
