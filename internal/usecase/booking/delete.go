package booking

import (
	"context"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
)

type DeleteBooking struct {
	repo  gym.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(repo gym.Repository, audit *audit.Dispatcher) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: audit}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorRole string,
	actorID uint,
	bookingID string,
	classID string,
) error {

	if err := uc.repo.DeleteBookingCascade(ctx, bookingID, classID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: actorRole,
		ActorID:   &actorID,
		Action:    "booking_deleted",
		Entity:    "booking",
		Metadata: map[string]any{
			"b_id": bookingID,
			"c_id": classID,
		},
	})

	return nil
}
