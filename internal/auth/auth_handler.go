package auth

import (
	"net/http"
	"os"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenCookieMaxAge = 7 * 24 * 60 * 60

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) RegisterCandidate(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.RegisterCandidate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	clearTokenCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logout realizado com sucesso."})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	resp, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func setTokenCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"

	sameSite := http.SameSiteLaxMode
	if isProd {
		// Frontend and API live on different domains in production.
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   tokenCookieMaxAge,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: sameSite,
	})
}

func clearTokenCookie(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: sameSite,
	})
}
