package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Lifecycle(t *testing.T) {
	token := RefreshToken{
		UserID:    uuid.New(),
		TokenHash: "deadbeef",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	assert.False(t, token.IsExpired())
	assert.False(t, token.IsRevoked())
	assert.True(t, token.IsValid())

	token.Revoke()
	assert.True(t, token.IsRevoked())
	assert.False(t, token.IsValid())
}

func TestRefreshToken_Expired(t *testing.T) {
	token := RefreshToken{
		UserID:    uuid.New(),
		TokenHash: "deadbeef",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	assert.True(t, token.IsExpired())
	assert.False(t, token.IsValid())
}
