package handler

import (
	"errors"
	"net/http"

	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责注册/登录接口
type AuthHandler struct {
	Creds *service.CredentialService
}

func NewAuthHandler(creds *service.CredentialService) *AuthHandler {
	return &AuthHandler{Creds: creds}
}

type authReq struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// Register creates a user. 400 on missing fields, 409 on duplicate email.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "email and secret required")
		return
	}

	err := h.Creds.Register(c.Request.Context(), req.Email, req.Secret)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		util.Fail(c, http.StatusBadRequest, "email and secret required")
	case errors.Is(err, service.ErrUserExists):
		util.Fail(c, http.StatusConflict, "user exists")
	case err != nil:
		util.Fail(c, http.StatusInternalServerError, "db error")
	default:
		util.OK(c)
	}
}

// Login verifies email+secret. 401 on any mismatch; no token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	err := h.Creds.Login(c.Request.Context(), req.Email, req.Secret)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		util.Fail(c, http.StatusUnauthorized, "invalid credentials")
	case err != nil:
		util.Fail(c, http.StatusInternalServerError, "db error")
	default:
		util.OK(c)
	}
}
