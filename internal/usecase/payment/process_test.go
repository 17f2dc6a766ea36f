package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
)

type fakeRepo struct {
	gym.Repository

	processFn func(ctx context.Context, paymentID, memberID string, points int) error
}

func (f *fakeRepo) ProcessPayment(ctx context.Context, paymentID, memberID string, points int) error {
	return f.processFn(ctx, paymentID, memberID, points)
}

func TestProcess(t *testing.T) {
	var gotPayment, gotMember string
	var gotPoints int
	repo := &fakeRepo{
		processFn: func(ctx context.Context, paymentID, memberID string, points int) error {
			gotPayment, gotMember, gotPoints = paymentID, memberID, points
			return nil
		},
	}

	uc := NewProcess(repo, nil)
	if err := uc.Execute(context.Background(), "admins", 1, "5", "7", 120); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotPayment != "5" || gotMember != "7" || gotPoints != 120 {
		t.Errorf("repo called with (%q, %q, %d), want (5, 7, 120)",
			gotPayment, gotMember, gotPoints)
	}
}

func TestProcessPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &fakeRepo{
		processFn: func(ctx context.Context, paymentID, memberID string, points int) error {
			return wantErr
		},
	}

	uc := NewProcess(repo, nil)
	if err := uc.Execute(context.Background(), "admins", 1, "5", "7", 120); !errors.Is(err, wantErr) {
		t.Errorf("Execute error = %v, want %v", err, wantErr)
	}
}
