package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
)

func newClassRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewClassHandler(repo)
	r.GET("/classes", h.List)
	r.GET("/classes/:id", h.Detail)
	return r
}

func TestClassList(t *testing.T) {
	repo := &fakeRepo{
		getAllFn: func(ctx context.Context, table gym.Table) ([]gym.Row, error) {
			if table != gym.TableClasses {
				t.Errorf("listed table %s", table)
			}
			return []gym.Row{{"c_id": 1}, {"c_id": 2}}, nil
		},
	}
	w := get(newClassRouter(repo), "/classes")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data  []gym.Row `json:"data"`
		Total int       `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("total = %d, data = %v", resp.Total, resp.Data)
	}
}

func TestClassDetail(t *testing.T) {
	repo := &fakeRepo{
		getAllWithIDFn: func(ctx context.Context, table gym.Table, idColumn gym.Column, id string) ([]gym.Row, error) {
			switch table {
			case gym.TableClasses:
				return []gym.Row{{"c_id": int64(3), "b_id": int64(8), "name": "yoga"}}, nil
			case gym.TableBookings:
				if id != "8" {
					t.Errorf("booking looked up with id %q, want 8", id)
				}
				return []gym.Row{{"b_id": int64(8), "r_id": int64(2)}}, nil
			case gym.TableRooms:
				if id != "2" {
					t.Errorf("room looked up with id %q, want 2", id)
				}
				return []gym.Row{{"r_id": int64(2), "name": "studio"}}, nil
			}
			t.Fatalf("unexpected table %s", table)
			return nil, nil
		},
		membersInClassFn: func(ctx context.Context, classID string) ([]gym.Row, error) {
			if classID != "3" {
				t.Errorf("members listed for class %q, want 3", classID)
			}
			return []gym.Row{{"m_id": int64(7), "name": "alice"}}, nil
		},
	}

	w := get(newClassRouter(repo), "/classes/3")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Class   []gym.Row `json:"class"`
		Booking []gym.Row `json:"booking"`
		Room    []gym.Row `json:"room"`
		Members []gym.Row `json:"members"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Class) != 1 || len(resp.Booking) != 1 || len(resp.Room) != 1 || len(resp.Members) != 1 {
		t.Errorf("incomplete detail: %s", w.Body.String())
	}
}

func TestClassDetailNotFound(t *testing.T) {
	repo := &fakeRepo{
		getAllWithIDFn: func(ctx context.Context, table gym.Table, idColumn gym.Column, id string) ([]gym.Row, error) {
			return []gym.Row{}, nil
		},
	}

	w := get(newClassRouter(repo), "/classes/99")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "class_not_found") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestClassDetailBookingNotFound(t *testing.T) {
	repo := &fakeRepo{
		getAllWithIDFn: func(ctx context.Context, table gym.Table, idColumn gym.Column, id string) ([]gym.Row, error) {
			if table == gym.TableClasses {
				return []gym.Row{{"c_id": int64(3), "b_id": int64(8)}}, nil
			}
			return []gym.Row{}, nil
		},
	}

	w := get(newClassRouter(repo), "/classes/3")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "booking_not_found") {
		t.Errorf("body = %s", w.Body.String())
	}
}
