package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sub := token.Subject{UserID: "emp-1", EmployeeID: "emp-1", Role: domain.RoleHR}

	r := newEngine()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"employee_id": c.GetString("employee_id"),
			"role":        c.GetString("role"),
		})
	})

	t.Run("bearer access token", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"emp-1","employee_id":"emp-1","role":"HR"}`, w.Body.String())
	})

	t.Run("cookie access token", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeRefresh, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := token.Generate(sub, token.TypeAccess, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})
}

type stubEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (s *stubEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, s.err
}

func TestRBACAuthorize(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		svc := &stubEnforcer{allowed: true}
		r := newEngine()
		r.GET("/x", withRole(domain.RoleEmployee), middleware.RBACAuthorize(svc, "leave_request", "create"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "leave_request", Action: "create"}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		r := newEngine()
		r.GET("/x", withRole(domain.RoleEmployee), middleware.RBACAuthorize(&stubEnforcer{}, "leave_balance", "manage"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "leave_balance:manage")
	})

	t.Run("no auth context", func(t *testing.T) {
		r := newEngine()
		r.GET("/x", middleware.RBACAuthorize(&stubEnforcer{allowed: true}, "a", "b"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := newEngine()
		r.GET("/x", withRole(domain.RoleHR), middleware.RBACAuthorize(&stubEnforcer{err: errors.New("boom")}, "a", "b"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExtractUserID(t *testing.T) {
	empID := uuid.NewString()
	withUser := func(id string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set("user_id", id); c.Next() }
	}
	echo := func(c *gin.Context) { c.String(http.StatusOK, c.GetString("user_id_validated")) }

	r := newEngine()
	r.GET("/ok", withUser(empID), middleware.ExtractUserID(), echo)
	r.GET("/malformed", withUser("emp-1"), middleware.ExtractUserID(), echo)
	r.GET("/missing", middleware.ExtractUserID(), echo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, empID, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/malformed", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_USER_ID")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/leave-requests:emp-1:key-1"
	const lockKey = cacheKey + ":lock"

	build := func() (*gin.Engine, redismock.ClientMock, *bool) {
		rdb, mock := redismock.NewClientMock()
		called := false
		r := newEngine()
		r.POST("/leave-requests",
			func(c *gin.Context) { c.Set("user_id_validated", "emp-1"); c.Next() },
			middleware.Idempotency(rdb),
			func(c *gin.Context) {
				called = true
				assert.Equal(t, cacheKey, c.GetString("idempotency_cache_key"))
				assert.Equal(t, lockKey, c.GetString("idempotency_lock_key"))
				c.Status(http.StatusCreated)
			},
		)
		return r, mock, &called
	}

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", nil)
		if key != "" {
			req.Header.Set("Idempotency-Key", key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request takes the lock", func(t *testing.T) {
		r, mock, called := build()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, *called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completed request is replayed", func(t *testing.T) {
		r, mock, called := build()
		mock.ExpectGet(cacheKey).SetVal(`{"id":"lr-1","status":"PENDING"}`)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, *called)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Contains(t, w.Body.String(), "lr-1")
	})

	t.Run("in-flight duplicate conflicts", func(t *testing.T) {
		r, mock, called := build()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, *called)
		assert.Contains(t, w.Body.String(), "PROCESSING")
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		r := newEngine()
		r.POST("/leave-requests", middleware.Idempotency(rdb), func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := post(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := newEngine()
	r.GET("/x",
		func(c *gin.Context) { c.Set("user_id", "emp-1"); c.Next() },
		middleware.RateLimitByUser(0.001, 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	r := newEngine()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"caller id is kept", "trace-01:abc", true},
		{"missing id is minted", "", false},
		{"unsafe id is replaced", "bad id\r\nX-Evil: 1", false},
		{"oversized id is replaced", strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			assert.Equal(t, got, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	r := newEngine()
	r.GET("/x",
		middleware.RequestID(),
		func(c *gin.Context) { c.Set("user_id", "emp-1"); c.Next() },
		middleware.ContextLogger(zap.NewNop()),
		func(c *gin.Context) {
			ctx := c.Request.Context()
			assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
			assert.Equal(t, "emp-1", contextutil.GetUserID(ctx))
			assert.NotNil(t, contextutil.GetLogger(ctx, nil))
			c.Status(http.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
}
