package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/session"
)

type stubStore struct {
	sessions map[string]*models.Session
	cleared  []string
}

func (s *stubStore) Get(_ context.Context, id string) (*models.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, session.ErrNotFound
}

func (s *stubStore) Set(_ context.Context, id, token, displayName string) error {
	s.sessions[id] = &models.Session{ID: id, Token: token, DisplayName: displayName}
	return nil
}

func (s *stubStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	s.cleared = append(s.cleared, id)
	return nil
}

func authTestRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(AuthRequired(store))
	protected.GET("/origin/add", func(c *gin.Context) {
		sess := c.MustGet("session").(*models.Session)
		c.String(http.StatusOK, "hello "+sess.DisplayName)
	})
	return r
}

func TestAuthRequiredNoCookie(t *testing.T) {
	r := authTestRouter(&stubStore{sessions: map[string]*models.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/origin/add", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAuthRequiredUnknownSession(t *testing.T) {
	r := authTestRouter(&stubStore{sessions: map[string]*models.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/origin/add", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-id"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// the stale cookie gets expired on the client
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthRequiredLiveSession(t *testing.T) {
	store := &stubStore{sessions: map[string]*models.Session{
		"sess-1": {ID: "sess-1", Token: "opaque-token", DisplayName: "Ravi Kumar"},
	}}
	r := authTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/origin/add", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello Ravi Kumar", w.Body.String())
	assert.Empty(t, store.cleared)
}

func TestTrimSpaces(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TrimSpaces())
	r.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("por"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit",
		strings.NewReader("por=++Mundra+Port+(GJ)++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, "Mundra Port (GJ)", w.Body.String())
}
