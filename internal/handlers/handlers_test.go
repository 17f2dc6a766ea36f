package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/middleware"
	"github.com/DojoGymServices/gym-manager/internal/session"
)

// ======================================================
// Fakes
// ======================================================

// fakeRepo embute a interface: métodos sem função configurada entram
// em pânico, provando que o handler não os chamou.
type fakeRepo struct {
	gym.Repository

	verifyFn         func(ctx context.Context, r role.Role, name, password string) ([]gym.Row, error)
	registerFn       func(ctx context.Context, r role.Role, name, hash string) (gym.Row, error)
	getAllFn         func(ctx context.Context, table gym.Table) ([]gym.Row, error)
	getAllWithIDFn   func(ctx context.Context, table gym.Table, idColumn gym.Column, id string) ([]gym.Row, error)
	membersInClassFn func(ctx context.Context, classID string) ([]gym.Row, error)
	joinFn           func(ctx context.Context, tableA, tableB gym.Table, joinColumn gym.Column, id string, selectColumn gym.Column) ([]gym.Row, error)
	matchSessionsFn  func(ctx context.Context, idColumn gym.Column, id string) ([]gym.Row, error)
	insertFn         func(ctx context.Context, table gym.Table, columns []gym.Column, values []any) error
	deleteAllFn      func(ctx context.Context, table gym.Table, idColumn gym.Column, id string) (int64, error)
	processFn        func(ctx context.Context, paymentID, memberID string, points int) error
}

func (f *fakeRepo) VerifyUser(ctx context.Context, r role.Role, name, password string) ([]gym.Row, error) {
	return f.verifyFn(ctx, r, name, password)
}

func (f *fakeRepo) RegisterUser(ctx context.Context, r role.Role, name, hash string) (gym.Row, error) {
	return f.registerFn(ctx, r, name, hash)
}

func (f *fakeRepo) GetAll(ctx context.Context, table gym.Table) ([]gym.Row, error) {
	return f.getAllFn(ctx, table)
}

func (f *fakeRepo) GetAllWithID(ctx context.Context, table gym.Table, idColumn gym.Column, id string) ([]gym.Row, error) {
	return f.getAllWithIDFn(ctx, table, idColumn, id)
}

func (f *fakeRepo) GetMembersInClass(ctx context.Context, classID string) ([]gym.Row, error) {
	return f.membersInClassFn(ctx, classID)
}

func (f *fakeRepo) JoinTablesOn(ctx context.Context, tableA, tableB gym.Table, joinColumn gym.Column, id string, selectColumn gym.Column) ([]gym.Row, error) {
	return f.joinFn(ctx, tableA, tableB, joinColumn, id, selectColumn)
}

func (f *fakeRepo) MatchSessionsFor(ctx context.Context, idColumn gym.Column, id string) ([]gym.Row, error) {
	return f.matchSessionsFn(ctx, idColumn, id)
}

func (f *fakeRepo) InsertRow(ctx context.Context, table gym.Table, columns []gym.Column, values []any) error {
	return f.insertFn(ctx, table, columns, values)
}

func (f *fakeRepo) DeleteAllWithID(ctx context.Context, table gym.Table, idColumn gym.Column, id string) (int64, error) {
	return f.deleteAllFn(ctx, table, idColumn, id)
}

func (f *fakeRepo) ProcessPayment(ctx context.Context, paymentID, memberID string, points int) error {
	return f.processFn(ctx, paymentID, memberID, points)
}

type fakeStore struct {
	sessions  map[string]*session.Session
	destroyed []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]*session.Session{}}
}

func (f *fakeStore) Create(ctx context.Context, r role.Role, userID uint) (*session.Session, error) {
	s := &session.Session{
		ID:        "sess-1",
		Role:      r,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*session.Session, error) {
	return f.sessions[id], nil
}

func (f *fakeStore) Destroy(ctx context.Context, id string) error {
	f.destroyed = append(f.destroyed, id)
	delete(f.sessions, id)
	return nil
}

// ======================================================
// Helpers
// ======================================================

// withSession injeta a sessão no contexto como o middleware faria.
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			c.Set(middleware.ContextSession, sess)
		}
		c.Next()
	}
}

func adminSession() *session.Session {
	return &session.Session{
		ID:        "sess-1",
		Role:      role.Admins,
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
