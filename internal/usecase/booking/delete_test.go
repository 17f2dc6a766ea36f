package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
)

type fakeRepo struct {
	gym.Repository

	deleteFn func(ctx context.Context, bookingID, classID string) error
}

func (f *fakeRepo) DeleteBookingCascade(ctx context.Context, bookingID, classID string) error {
	return f.deleteFn(ctx, bookingID, classID)
}

func TestDeleteBooking(t *testing.T) {
	var gotBooking, gotClass string
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, bookingID, classID string) error {
			gotBooking, gotClass = bookingID, classID
			return nil
		},
	}

	uc := NewDeleteBooking(repo, nil)
	if err := uc.Execute(context.Background(), "admins", 1, "12", "34"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotBooking != "12" || gotClass != "34" {
		t.Errorf("cascade called with (%q, %q), want (12, 34)", gotBooking, gotClass)
	}
}

func TestDeleteBookingPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, bookingID, classID string) error {
			return wantErr
		},
	}

	uc := NewDeleteBooking(repo, nil)
	if err := uc.Execute(context.Background(), "admins", 1, "12", "34"); !errors.Is(err, wantErr) {
		t.Errorf("Execute error = %v, want %v", err, wantErr)
	}
}
