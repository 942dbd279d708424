package apiserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	authapp "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/application"
	authdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
	authports "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
	greetingports "github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/ports"
	apierrors "github.com/Apurer/go-gin-northwind-api/internal/shared/errors"
)

const (
	// SessionCookie carries tokens of the session namespace.
	SessionCookie = "session_token"
	// LoggedOutPath is where both logout routes redirect.
	LoggedOutPath = "/logged_out"

	tokenContextKey = "apiserver.token"
)

// AuthAPI serves login, the gated welcome pages and logout for both token namespaces.
type AuthAPI struct {
	service  authports.Service
	greeting greetingports.Service
}

func NewAuthAPI(service authports.Service, greeting greetingports.Service) AuthAPI {
	return AuthAPI{service: service, greeting: greeting}
}

// Post /login_session
// Issues a session token in the session_token cookie
func (api *AuthAPI) LoginSession(c *gin.Context) {
	token, ok := api.login(c, authdomain.NamespaceSession)
	if !ok {
		return
	}
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{})
}

// Post /login_token
// Issues a token returned in the body
func (api *AuthAPI) LoginToken(c *gin.Context) {
	token, ok := api.login(c, authdomain.NamespaceToken)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (api *AuthAPI) login(c *gin.Context, ns authdomain.Namespace) (string, bool) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		respondProblem(c, apierrors.ErrUnauthorized.WithChallenge(BasicChallenge))
		return "", false
	}
	token, err := api.service.Login(c.Request.Context(), ns, username, password)
	if errors.Is(err, authapp.ErrAuthentication) {
		respondProblem(c, apierrors.ErrUnauthorized.WithChallenge(BasicChallenge))
		return "", false
	}
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return token, true
}

// RequireSession lets the request through only with a live session_token cookie.
func (api *AuthAPI) RequireSession(c *gin.Context) {
	token, _ := c.Cookie(SessionCookie)
	api.gate(c, authdomain.NamespaceSession, token)
}

// RequireToken lets the request through only with a live token in the query or a Bearer header.
func (api *AuthAPI) RequireToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
	}
	api.gate(c, authdomain.NamespaceToken, token)
}

func (api *AuthAPI) gate(c *gin.Context, ns authdomain.Namespace, token string) {
	if err := api.service.Authorize(c.Request.Context(), ns, token); err != nil {
		respondError(c, err)
		return
	}
	c.Set(tokenContextKey, token)
	c.Next()
}

// Get /welcome_session, Get /welcome_token
func (api *AuthAPI) Welcome(c *gin.Context) {
	api.respondFormatted(c, "Welcome")
}

// Delete /logout_session
// Revokes the session token and clears the cookie
func (api *AuthAPI) LogoutSession(c *gin.Context) {
	if !api.logout(c, authdomain.NamespaceSession) {
		return
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	redirectLoggedOut(c)
}

// Delete /logout_token
func (api *AuthAPI) LogoutToken(c *gin.Context) {
	if !api.logout(c, authdomain.NamespaceToken) {
		return
	}
	redirectLoggedOut(c)
}

func (api *AuthAPI) logout(c *gin.Context, ns authdomain.Namespace) bool {
	if err := api.service.Logout(c.Request.Context(), ns, c.GetString(tokenContextKey)); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// Get /logged_out
func (api *AuthAPI) LoggedOut(c *gin.Context) {
	api.respondFormatted(c, "Logged out")
}

// Get /auth
// Checks password against a hex SHA-512 digest; the body is always empty
func (api *AuthAPI) CheckPasswordHash(c *gin.Context) {
	if !api.service.VerifyPasswordHash(c.Request.Context(), c.Query("password"), c.Query("password_hash")) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *AuthAPI) respondFormatted(c *gin.Context, word string) {
	msg := api.greeting.Format(c.Request.Context(), c.Query("format"), word)
	c.Data(http.StatusOK, msg.ContentType, msg.Body)
}

func redirectLoggedOut(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, LoggedOutPath+"?format="+url.QueryEscape(c.Query("format")))
}
