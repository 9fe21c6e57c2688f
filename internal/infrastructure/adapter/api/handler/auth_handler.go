package handler

import (
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TokenIssuer creates session tokens for authenticated users
type TokenIssuer interface {
	Issue(username string) (string, error)
	TTL() time.Duration
}

// AuthHandler handles registration and login requests
type AuthHandler struct {
	credentials usecase.CredentialUseCase
	tokens      TokenIssuer
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	credentials usecase.CredentialUseCase,
	tokens TokenIssuer,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles the POST /api/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, errs.CodeInvalidCredentials, err)
		return
	}

	if err := h.credentials.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{Username: req.Username})
}

// Login handles the POST /api/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, errs.CodeInvalidCredentials, err)
		return
	}

	ok, err := h.credentials.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrAuthenticationFailure),
			Message: "Invalid username or password",
		})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		Username:  req.Username,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
	})
}
