package authn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goap-planner/internal/authn"
)

func TestTokenManager_GenerateAndValidateToken(t *testing.T) {
	signingKey := []byte("secret-signing-key-must-be-long-enough")
	tm := authn.NewTokenManager(signingKey, "goap-planner")

	t.Run("generates and validates valid token", func(t *testing.T) {
		token, err := tm.GenerateToken("actor-123", []string{"planner:write"}, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "actor-123", claims.ActorID)
		assert.Equal(t, []string{"planner:write"}, claims.Roles)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("rejects invalid signature", func(t *testing.T) {
		token, err := tm.GenerateToken("actor-456", nil, time.Hour)
		require.NoError(t, err)

		otherTM := authn.NewTokenManager([]byte("a-completely-different-signing-key"), "goap-planner")
		_, err = otherTM.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := tm.GenerateToken("actor-789", nil, -time.Hour)
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.Error(t, err)
	})
}
