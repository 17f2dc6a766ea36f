package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/domain/role"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Role     role.Role
	Name     string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  gym.Repository
	audit *audit.Dispatcher
}

func NewRegister(repo gym.Repository, audit *audit.Dispatcher) *Register {
	return &Register{repo: repo, audit: audit}
}

// Execute devolve nil sem erro quando o nome já está cadastrado.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (gym.Row, error) {

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(in.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.RegisterUser(ctx, in.Role, in.Name, string(hashed))
	if err != nil {
		return nil, err
	}

	if created == nil {
		// nome já existente → no-op, sem auditoria
		return nil, nil
	}

	id := gym.RowID(created, gym.Column(in.Role.IDColumn()))
	uc.audit.Dispatch(audit.Event{
		ActorRole: in.Role.String(),
		ActorID:   &id,
		Action:    "user_registered",
		Entity:    in.Role.String(),
		EntityID:  &id,
	})

	return created, nil
}
