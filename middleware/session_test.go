package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/config"
	"main/model"

	"github.com/gin-gonic/gin"
)

type stubSessionRepo struct {
	sessions map[string]*model.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*model.Session{}}
}

func (s *stubSessionRepo) CreateSession(session *model.Session) error {
	cp := *session
	s.sessions[session.SessionID] = &cp
	return nil
}

func (s *stubSessionRepo) GetSession(sessionID string) (*model.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		cp := *sess
		return &cp, nil
	}
	return nil, nil
}

func (s *stubSessionRepo) UpdateSession(session *model.Session) error {
	if _, ok := s.sessions[session.SessionID]; !ok {
		return model.ErrNotFound
	}
	cp := *session
	s.sessions[session.SessionID] = &cp
	return nil
}

func (s *stubSessionRepo) DeleteSession(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func sessionTestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		SessionDuration: 24 * time.Hour,
		SessionIdleMax:  48 * time.Hour,
		CookieSecure:    false,
	}
}

// whoami exposes what the middleware bound to the request context.
func sessionTestRouter(repo SessionRepository, cfg *config.ServerConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(repo, cfg))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func request(router *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/whoami", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionMiddlewareResolvesUser(t *testing.T) {
	repo := newStubSessionRepo()
	cfg := sessionTestConfig()
	now := time.Now()
	repo.sessions["sess-1"] = &model.Session{
		SessionID:      "sess-1",
		UserID:         "user-1",
		CreatedAt:      now,
		ExpiresAt:      now.Add(24 * time.Hour),
		LastActivityAt: now,
		IsActive:       true,
	}

	router := sessionTestRouter(repo, cfg)

	w := request(router, "sess-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":"user-1"}` {
		t.Errorf("body = %s", body)
	}
}

func TestSessionMiddlewareAnonymousPassesThrough(t *testing.T) {
	router := sessionTestRouter(newStubSessionRepo(), sessionTestConfig())

	w := request(router, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":""}` {
		t.Errorf("anonymous request bound an identity: %s", body)
	}
}

func TestSessionMiddlewareRejectsStaleSessions(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		session *model.Session
	}{
		{"inactive", &model.Session{
			SessionID: "s", UserID: "u", IsActive: false,
			ExpiresAt: now.Add(time.Hour), LastActivityAt: now,
		}},
		{"expired", &model.Session{
			SessionID: "s", UserID: "u", IsActive: true,
			ExpiresAt: now.Add(-time.Minute), LastActivityAt: now,
		}},
		{"idle too long", &model.Session{
			SessionID: "s", UserID: "u", IsActive: true,
			ExpiresAt: now.Add(time.Hour), LastActivityAt: now.Add(-72 * time.Hour),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubSessionRepo()
			repo.sessions["s"] = tt.session
			router := sessionTestRouter(repo, sessionTestConfig())

			w := request(router, "s")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if body := w.Body.String(); body != `{"user_id":""}` {
				t.Errorf("stale session bound an identity: %s", body)
			}

			// The cookie is cleared on the way out
			cleared := false
			for _, c := range w.Result().Cookies() {
				if c.Name == "session_id" && c.MaxAge < 0 {
					cleared = true
				}
			}
			if !cleared {
				t.Error("stale session cookie was not cleared")
			}
		})
	}
}

func TestSessionMiddlewareTouchesActivity(t *testing.T) {
	repo := newStubSessionRepo()
	now := time.Now()
	stale := now.Add(-time.Hour)
	repo.sessions["sess-1"] = &model.Session{
		SessionID: "sess-1", UserID: "user-1", IsActive: true,
		ExpiresAt: now.Add(24 * time.Hour), LastActivityAt: stale,
	}

	router := sessionTestRouter(repo, sessionTestConfig())
	request(router, "sess-1")

	if !repo.sessions["sess-1"].LastActivityAt.After(stale) {
		t.Error("LastActivityAt should advance on each authenticated request")
	}
}

func TestCreateAndDestroySession(t *testing.T) {
	repo := newStubSessionRepo()
	cfg := sessionTestConfig()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/open", func(c *gin.Context) {
		session, err := CreateSession(c, "user-1", repo, cfg)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": session.SessionID})
	})
	router.POST("/close", func(c *gin.Context) {
		if err := DestroySession(c, repo, cfg); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/open", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("open = %d", w.Code)
	}

	var sessionID string
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			sessionID = c.Value
			if !c.HttpOnly {
				t.Error("session cookie must be http-only")
			}
		}
	}
	if sessionID == "" {
		t.Fatal("no session cookie set")
	}

	stored := repo.sessions[sessionID]
	if stored == nil {
		t.Fatal("session not persisted")
	}
	if stored.UserID != "user-1" || !stored.IsActive {
		t.Errorf("unexpected session record: %+v", stored)
	}
	if stored.DisplayName != "Firefox on Linux" {
		t.Errorf("display name = %q", stored.DisplayName)
	}

	req = httptest.NewRequest("POST", "/close", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("close = %d", w.Code)
	}
	if _, ok := repo.sessions[sessionID]; ok {
		t.Error("session should be deleted")
	}
}
