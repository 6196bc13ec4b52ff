//go:build e2e

package helper

import (
	"testing"
	"time"

	"cuponera/internal/pkg/config"
	"cuponera/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token the way the running app validates it.
func IssueToken(t *testing.T, cfg config.Config, accountID uuid.UUID, role jwt.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(accountID, role)
	require.NoError(t, err)

	return token
}
