package token_test

import (
	"testing"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sub := token.Subject{UserID: "u-1", EmployeeID: "u-1", Role: "HR"}

	t.Run("round trip", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, time.Minute)
		require.NoError(t, err)

		got, err := token.Parse(tok, token.TypeAccess)

		assert.NoError(t, err)
		assert.Equal(t, sub, got)
	})

	t.Run("wrong type", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeRefresh, time.Minute)
		require.NoError(t, err)

		_, err = token.Parse(tok, token.TypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, -time.Minute)
		require.NoError(t, err)

		_, err = token.Parse(tok, token.TypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, time.Minute)
		require.NoError(t, err)
		t.Setenv("JWT_SECRET", "rotated")

		_, err = token.Parse(tok, token.TypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := token.Parse("not-a-token", token.TypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
