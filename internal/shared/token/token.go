package token

import (
	"errors"
	"os"
	"time"

	autherrors "go-leave/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Subject struct {
	UserID     string
	EmployeeID string
	Role       string
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Generate signs an HS256 token for the subject with JWT_SECRET.
func Generate(sub Subject, tokenType string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     sub.UserID,
		"employee_id": sub.EmployeeID,
		"role":        sub.Role,
		"token_type":  tokenType,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret())
}

// Parse validates signature, expiry and token type and returns the subject.
func Parse(tokenString, tokenType string) (Subject, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, autherrors.ErrTokenExpired
		}
		return Subject{}, autherrors.ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return Subject{}, autherrors.ErrInvalidToken
	}
	if got, _ := claims["token_type"].(string); got != tokenType {
		return Subject{}, autherrors.ErrInvalidToken
	}

	var sub Subject
	sub.UserID, _ = claims["user_id"].(string)
	sub.EmployeeID, _ = claims["employee_id"].(string)
	sub.Role, _ = claims["role"].(string)
	if sub.UserID == "" || sub.EmployeeID == "" {
		return Subject{}, autherrors.ErrInvalidToken
	}
	return sub, nil
}
