package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/session"
)

type fakeStore struct {
	sessions map[string]*session.Session
}

func (f *fakeStore) Create(ctx context.Context, r role.Role, userID uint) (*session.Session, error) {
	return nil, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*session.Session, error) {
	return f.sessions[id], nil
}

func (f *fakeStore) Destroy(ctx context.Context, id string) error {
	return nil
}

func newRouter(store session.Store, p role.Policy, handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(store))
	r.GET("/members/:id", RequirePolicy(p), func(c *gin.Context) {
		*handled = true
		c.Status(http.StatusOK)
	})
	return r
}

func memberSession(id uint) *session.Session {
	return &session.Session{
		ID:        "sess-1",
		Role:      role.Members,
		UserID:    id,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRequirePolicy(t *testing.T) {
	policy := role.AllowOrSelf(role.Members, role.Admins, role.Trainers)

	tests := []struct {
		name       string
		sess       *session.Session
		withCookie bool
		path       string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "anonymous is rejected",
			path:       "/members/5",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "stale cookie is rejected",
			withCookie: true,
			path:       "/members/5",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "member reaches own profile",
			sess:       memberSession(5),
			withCookie: true,
			path:       "/members/5",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "member blocked from another profile",
			sess:       memberSession(7),
			withCookie: true,
			path:       "/members/5",
			wantStatus: http.StatusForbidden,
		},
		{
			name: "admin reaches any profile",
			sess: &session.Session{
				ID:        "sess-1",
				Role:      role.Admins,
				UserID:    1,
				ExpiresAt: time.Now().Add(time.Hour),
			},
			withCookie: true,
			path:       "/members/5",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{sessions: map[string]*session.Session{}}
			if tt.sess != nil {
				store.sessions[tt.sess.ID] = tt.sess
			}

			var called bool
			r := newRouter(store, policy, &called)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withCookie {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sess-1"})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestCurrentSessionNilForAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentSession(c); got != nil {
		t.Errorf("CurrentSession = %+v, want nil", got)
	}
}
