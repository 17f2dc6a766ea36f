package payment

import (
	"context"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
)

type Process struct {
	repo  gym.Repository
	audit *audit.Dispatcher
}

func NewProcess(repo gym.Repository, audit *audit.Dispatcher) *Process {
	return &Process{repo: repo, audit: audit}
}

// Execute alterna o estado processed do pagamento e credita cost como
// pontos de fidelidade do membro, atomicamente.
func (uc *Process) Execute(
	ctx context.Context,
	actorRole string,
	actorID uint,
	paymentID string,
	memberID string,
	cost int,
) error {

	if err := uc.repo.ProcessPayment(ctx, paymentID, memberID, cost); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: actorRole,
		ActorID:   &actorID,
		Action:    "payment_processed",
		Entity:    "payment",
		Metadata: map[string]any{
			"p_id": paymentID,
			"m_id": memberID,
			"cost": cost,
		},
	})

	return nil
}
