package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ravi-codingcity/Origin-Frontend/internal/logger"
	"github.com/ravi-codingcity/Origin-Frontend/internal/middleware"
)

func (h *Handlers) handleLoginPage(c *gin.Context) {
	// A browser with a live session skips the login form.
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if _, err := h.store.Get(c.Request.Context(), sessionID); err == nil {
			c.Redirect(http.StatusFound, "/import_export")
			return
		}
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Sign in - FreightPro",
	})
}

func (h *Handlers) handleLogin(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Title": "Sign in - FreightPro",
			"Error": "Username and password are required",
			"Email": email,
		})
		return
	}

	resp, err := h.client.Login(c.Request.Context(), email, password)
	if err != nil {
		logger.Error("Login request failed", "email", email, "error", err)
		c.HTML(http.StatusBadGateway, "login.html", gin.H{
			"Title": "Sign in - FreightPro",
			"Error": "Connection error. Please try again later.",
			"Email": email,
		})
		return
	}

	if resp.Token == "" {
		message := resp.Message
		if message == "" {
			message = "Login failed. Please check your credentials."
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Sign in - FreightPro",
			"Error": message,
			"Email": email,
		})
		return
	}

	sessionID := uuid.New().String()
	if err := h.store.Set(c.Request.Context(), sessionID, resp.Token, email); err != nil {
		logger.Error("Failed to save session", "email", email, "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Sign in - FreightPro",
			"Error": "Failed to start a session. Please try again.",
			"Email": email,
		})
		return
	}

	logger.Info("Login successful", "email", email, "session", sessionID)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.cfg.SessionDuration.Seconds()), "/", "", true, true)
	c.Redirect(http.StatusFound, "/import_export")
}

// handleLogout invalidates the token upstream when it can, but the local
// session and cookie go away regardless of what the backend says.
func (h *Handlers) handleLogout(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := h.client.Logout(c.Request.Context(), sessionID); err != nil {
		logger.Warn("Upstream logout failed", "session", sessionID, "error", err)
	}

	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		logger.Error("Failed to clear session", "session", sessionID, "error", err)
	}

	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
