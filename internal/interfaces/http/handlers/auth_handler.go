package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
	"alumni-connect.backend/pkg/crypto"
	"alumni-connect.backend/pkg/google"
)

// oauthStateCookie carries the CSRF state across the Google redirect.
const oauthStateCookie = "oauth_state"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	exchanger   google.CodeExchanger
	frontendURL string
}

// NewAuthHandler creates a new auth handler. A nil exchanger disables
// the browser redirect flow; token-based Google sign-in still works.
func NewAuthHandler(authUsecase *usecases.AuthUsecase, exchanger google.CodeExchanger, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		exchanger:   exchanger,
		frontendURL: frontendURL,
	}
}

// Register handles member registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration received. Verify your email, then wait for admin approval.",
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"status": user.Status,
		},
	})
}

// Login handles email/password login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// GoogleSignIn handles Google ID token sign-in and first-time sign-up
// POST /api/v1/auth/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var input entities.GoogleSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.GoogleSignIn(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// GoogleRedirect starts the browser OAuth flow by sending the user to
// Google's consent page with a CSRF state cookie set.
// GET /api/v1/auth/google/redirect
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	if h.exchanger == nil {
		response.Error(c, domainerrors.NotFound("Google sign-in is not configured"))
		return
	}

	state, err := crypto.GenerateVerificationToken()
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.exchanger.AuthURL(state))
}

// GoogleCallback finishes the browser OAuth flow: checks the state,
// exchanges the code for an ID token and signs the member in. On
// success the browser lands on the frontend callback page with the
// access token.
// GET /api/v1/auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.exchanger == nil {
		response.Error(c, domainerrors.NotFound("Google sign-in is not configured"))
		return
	}

	stored, err := c.Cookie(oauthStateCookie)
	if err != nil || stored == "" || c.Query("state") != stored {
		response.Error(c, domainerrors.Unauthorized("OAuth state mismatch"))
		return
	}

	idToken, err := h.exchanger.IDToken(c.Request.Context(), c.Query("code"))
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Google sign-in failed"))
		return
	}

	authResponse, err := h.authUsecase.GoogleSignIn(c.Request.Context(), &entities.GoogleSignInInput{IDToken: idToken})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/auth/callback?token="+authResponse.AccessToken)
}

// VerifyEmail consumes an email verification token
// GET /api/v1/auth/verify-email?token=...
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, domainerrors.BadRequest("Verification token is required"))
		return
	}

	if err := h.authUsecase.VerifyEmail(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified. Your account is awaiting admin approval.",
	})
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// Reapply requests re-approval for a removed profile
// POST /api/v1/auth/reapply
func (h *AuthHandler) Reapply(c *gin.Context) {
	var input entities.ReapplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.RequestReapproval(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Re-approval request received. An admin will review your profile.",
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"status": user.Status,
		},
	})
}

// Logout invalidates the server-side session, if any
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionHeader)
	if err := h.authUsecase.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Signed out"})
}
