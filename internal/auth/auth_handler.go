package auth

import (
	"net/http"
	"os"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"
	"go-leave/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func (ctrl *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isProd() bool {
	return os.Getenv("APP_ENV") == "production"
}

func setAuthCookies(c *gin.Context, access, refresh string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    access,
		Path:     "/",
		MaxAge:   int(token.AccessTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd(),
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Path:     "/",
		MaxAge:   int(token.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	clientType := resolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))

	access, refresh, userResp, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	if clientType == ClientWeb {
		setAuthCookies(c, access, refresh)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  access,
		"refresh_token": refresh,
	}, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		ctrl.writeServiceError(c, autherrors.ErrMissingToken)
		return
	}

	userResp, err := ctrl.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	for _, name := range []string{"access_token", "refresh_token"} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   isProd(),
			SameSite: http.SameSiteLaxMode,
		})
	}

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (ctrl *Handler) RefreshToken(c *gin.Context) {
	isWeb := resolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")) == ClientWeb

	var refreshToken string
	if isWeb {
		cookie, err := c.Cookie("refresh_token")
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "Missing refresh token", nil)
			return
		}
		refreshToken = cookie
	} else {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Refresh token is required", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	newAccess, newRefresh, userResp, err := ctrl.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	if isWeb {
		setAuthCookies(c, newAccess, newRefresh)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	}, nil)
}
