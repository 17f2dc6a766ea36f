package account

import (
	"context"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/session"
)

type LoginInput struct {
	Role     role.Role
	Name     string
	Password string
}

type Login struct {
	repo     gym.Repository
	sessions session.Store
}

func NewLogin(repo gym.Repository, sessions session.Store) *Login {
	return &Login{repo: repo, sessions: sessions}
}

// Execute devolve nil sem erro quando as credenciais não conferem;
// nesse caso nenhuma sessão é criada.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*session.Session, error) {

	rows, err := uc.repo.VerifyUser(ctx, in.Role, in.Name, in.Password)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	userID := gym.RowID(rows[0], gym.Column(in.Role.IDColumn()))

	return uc.sessions.Create(ctx, in.Role, userID)
}

type Logout struct {
	sessions session.Store
}

func NewLogout(sessions session.Store) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, sessionID string) error {
	return uc.sessions.Destroy(ctx, sessionID)
}
