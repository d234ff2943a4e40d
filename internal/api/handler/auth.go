package handler

import (
	"net/http"
	"time"

	"github.com/Rrens/space-reservation/internal/api/middleware"
	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/Rrens/space-reservation/internal/usecase"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	verify        *usecase.VerifyCredentialsUsecase
	signup        *usecase.SignupUsecase
	checkEmail    *usecase.CheckEmailDuplicationUseCase
	issue         *usecase.IssueTokensUsecase
	refresh       *usecase.RefreshTokensUsecase
	logout        *usecase.LogoutUsecase
	limiter       middleware.Limiter
	accessTTL     time.Duration
	refreshTTL    time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. limiter may be nil; when set,
// a successful login clears the caller's attempt counter.
func NewAuthHandler(users domain.UserRepository, hasher *security.PasswordHasher, jwtManager *security.JWTManager, limiter middleware.Limiter, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		verify:        usecase.NewVerifyCredentialsUsecase(usecase.NewLoginUsecase(users, hasher)),
		signup:        usecase.NewSignupUsecase(users, hasher),
		checkEmail:    usecase.NewCheckEmailDuplicationUseCase(users),
		issue:         usecase.NewIssueTokensUsecase(jwtManager),
		refresh:       usecase.NewRefreshTokensUsecase(users, jwtManager),
		logout:        usecase.NewLogoutUsecase(),
		limiter:       limiter,
		accessTTL:     jwtManager.AccessTokenTTL(),
		refreshTTL:    jwtManager.RefreshTokenTTL(),
		secureCookies: secureCookies,
	}
}

// Login verifies credentials and sets the session cookies
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.CredentialsRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.verify.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, r, usecase.NewInvalidCredentialsError())
		return
	}

	tokens, err := h.issue.Execute(*user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.resetAttempts(r)
	h.setSessionCookies(w, tokens)
	response.OK(w, dto.LoginDTO{User: *user, Tokens: *tokens})
}

func (h *AuthHandler) resetAttempts(r *http.Request) {
	if h.limiter == nil {
		return
	}
	ip := middleware.ClientIP(r)
	if err := h.limiter.Reset(r.Context(), ip); err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("failed to reset login attempts")
	}
}

// Signup registers a new user account
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input dto.SignupRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.signup.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, user)
}

// CheckEmail reports whether ?email= is already registered
func (h *AuthHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	exists, err := h.checkEmail.Execute(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]bool{"exists": exists})
}

// Refresh exchanges the refresh token (cookie first, then body) for a new pair
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(middleware.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var input struct {
			RefreshToken string `json:"refreshToken"`
		}
		// an absent or malformed body is treated as a missing token
		if err := decode(r, &input); err == nil {
			token = input.RefreshToken
		}
	}
	if token == "" {
		response.Unauthorized(w, "missing refresh token")
		return
	}

	result, err := h.refresh.Execute(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, &result.Tokens)
	response.OK(w, result)
}

// Logout clears both session cookies
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	result := h.logout.Execute()

	h.clearCookie(w, middleware.AccessTokenCookie)
	h.clearCookie(w, middleware.RefreshTokenCookie)

	response.OK(w, result)
}

func (h *AuthHandler) setSessionCookies(w http.ResponseWriter, tokens *dto.TokenDTO) {
	h.setCookie(w, middleware.AccessTokenCookie, tokens.AccessToken, h.accessTTL)
	h.setCookie(w, middleware.RefreshTokenCookie, tokens.RefreshToken, h.refreshTTL)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
