package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/authservice"
	"github.com/Nataraj2001/LMS/internal/application/otpservice"
	"github.com/Nataraj2001/LMS/internal/domain"
)

type AuthHandler struct {
	otpSvc      otpservice.IOTPService
	authSvc     authservice.IAuthService
	adminEmails []string
	logger      zerolog.Logger
}

func NewAuthHandler(otpSvc otpservice.IOTPService, authSvc authservice.IAuthService, adminEmails []string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		otpSvc:      otpSvc,
		authSvc:     authSvc,
		adminEmails: adminEmails,
		logger:      logger,
	}
}

type otpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if err := h.otpSvc.Generate(c.Request.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to issue OTP")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent to registered email",
	})
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if !h.otpSvc.Validate(c.Request.Context(), req.Email, req.OTP) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired OTP",
		})
		return
	}

	role := domain.RoleUser
	for _, adminEmail := range h.adminEmails {
		if req.Email == adminEmail {
			role = domain.RoleAdmin
			break
		}
	}

	token, err := h.authSvc.IssueToken(req.Email, role)
	if err != nil {
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to issue token")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  role,
	})
}
