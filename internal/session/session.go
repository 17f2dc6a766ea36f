package session

import (
	"context"
	"time"

	"github.com/DojoGymServices/gym-manager/internal/domain/role"
)

const CookieName = "gym_session"

// Session é o valor imutável construído uma vez na entrada do request.
type Session struct {
	ID        string    `json:"id"`
	Role      role.Role `json:"role"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	Create(ctx context.Context, r role.Role, userID uint) (*Session, error)

	// Get devolve nil sem erro quando a sessão não existe ou expirou.
	Get(ctx context.Context, id string) (*Session, error)

	Destroy(ctx context.Context, id string) error
}
