package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/logger"
	logicv1 "github.com/edziennik/school-backend/internal/logic/v1"
	"github.com/edziennik/school-backend/middleware"
)

const sessionCookieName = "access_token"

func (h *Handler) sameSiteMode() http.SameSite {
	switch h.cookies.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// setSessionCookie mirrors the token into an http-only cookie. maxAge comes
// from the token's own lifetime, so cookie and token expire together.
// gin's SetCookie would query-escape the space in the "Bearer " scheme
// prefix; http.SetCookie quotes the value instead, keeping it readable.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "Bearer " + token,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   h.cookies.Domain,
		Secure:   h.cookies.Secure,
		HttpOnly: true,
		SameSite: h.sameSiteMode(),
	})
}

// Login handles POST /auth/login?remember_me=bool.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	rememberMe, _ := strconv.ParseBool(c.DefaultQuery("remember_me", "false"))

	resp, err := h.auth.Login(ctx, req, rememberMe)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("Login failed")
		if errors.Is(err, logicv1.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}

	h.setSessionCookie(c, resp.AccessToken, resp.CookieMaxAge)
	log.Info().Int("user_id", resp.User.ID).Msg("Login successful")
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout. The token itself stays valid until it
// expires; only the cookie is cleared.
func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		Domain:   h.cookies.Domain,
		Secure:   h.cookies.Secure,
		HttpOnly: true,
		SameSite: h.sameSiteMode(),
	})
	c.JSON(http.StatusOK, h.auth.Logout())
}

// Register handles POST /auth/register. A successful registration responds
// exactly like a login: the new account is authenticated immediately.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.register", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("Registration failed")
		switch {
		case errors.Is(err, logicv1.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"detail": "User with this email already exists"})
		case errors.Is(err, logicv1.ErrInvalidCredentials):
			// auto-login after a successful insert should not fail; treat
			// it as unexpected rather than exposing a 401 on register
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		}
		return
	}

	h.setSessionCookie(c, resp.AccessToken, resp.CookieMaxAge)
	log.Info().Int("user_id", resp.User.ID).Msg("Registration successful")
	c.JSON(http.StatusOK, resp)
}
