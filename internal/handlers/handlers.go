package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ravi-codingcity/Origin-Frontend/internal/config"
	"github.com/ravi-codingcity/Origin-Frontend/internal/forms"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/middleware"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/session"
)

// Handlers wires the page handlers to their dependencies. Everything is
// constructor-injected; nothing reads global state.
type Handlers struct {
	cfg        *config.Config
	store      session.Store
	client     *freight.Client
	controller *forms.Controller
}

func New(cfg *config.Config, store session.Store, client *freight.Client, controller *forms.Controller) *Handlers {
	return &Handlers{
		cfg:        cfg,
		store:      store,
		client:     client,
		controller: controller,
	}
}

func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.Use(middleware.LogRequests())
	r.Use(middleware.SecurityHeaders(h.cfg))
	r.Use(middleware.TrimSpaces())

	r.GET("/", h.handleLoginPage)
	r.POST("/login", middleware.AuthRateLimit(h.cfg), h.handleLogin)

	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(h.store))
	{
		protected.GET("/logout", h.handleLogout)
		protected.GET("/import_export", h.handleImportExport)

		protected.GET("/origin/add", h.handleAddOriginPage)
		protected.POST("/origin/add", h.handleSubmitOrigin)
		protected.POST("/origin/:id", h.handleUpdateOrigin)
		protected.GET("/origin/view", h.handleViewOrigin)

		protected.GET("/railfreight/add", h.handleAddRailPage)
		protected.POST("/railfreight/add", h.handleSubmitRail)
		protected.POST("/railfreight/:id", h.handleUpdateRail)
		protected.GET("/railfreight/view", h.handleViewRail)
	}
}

// currentSession returns the session placed in the context by
// AuthRequired.
func currentSession(c *gin.Context) *models.Session {
	if sess, ok := c.MustGet("session").(*models.Session); ok {
		return sess
	}
	return nil
}

// redirectToLogin sends the browser back to the login route after an
// auth failure, clearing the cookie. The guard against redirecting when
// already on the login route keeps a broken login page from looping.
func (h *Handlers) redirectToLogin(c *gin.Context) {
	if c.FullPath() == "/" {
		return
	}
	if sessionID := c.GetString("session_id"); sessionID != "" {
		_ = h.store.Clear(c.Request.Context(), sessionID)
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

// userMessage converts a data-layer failure into the single string a
// page displays. Auth errors never reach here; callers redirect on them
// first.
func userMessage(err error) string {
	var validationErr *forms.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if errors.Is(err, forms.ErrSubmissionInFlight) || errors.Is(err, forms.ErrMissingRecordID) {
		return err.Error()
	}

	var serverErr *freight.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}

	return err.Error()
}

func (h *Handlers) handleImportExport(c *gin.Context) {
	sess := currentSession(c)
	c.HTML(http.StatusOK, "import_export.html", gin.H{
		"Title": "Import / Export - FreightPro",
		"User":  sess.DisplayName,
	})
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
