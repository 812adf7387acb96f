package usecase

import (
	"context"
	"testing"

	"furniture_warehouse/internal/domain/entities"
	mock_interfaces "furniture_warehouse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditUseCase_ListRecent(t *testing.T) {
	t.Run("disabled backend", func(t *testing.T) {
		uc := NewAuditUseCase(nil)
		events, err := uc.ListRecent(context.Background(), 10)
		if err != nil || events == nil || len(events) != 0 {
			t.Fatalf("expected empty list, got %v err=%v", events, err)
		}
	})

	limits := []struct {
		name string
		in   int
		want int
	}{
		{name: "default", in: 0, want: DefaultAuditLimit},
		{name: "negative", in: -4, want: DefaultAuditLimit},
		{name: "clamped", in: 10000, want: MaxAuditLimit},
		{name: "as given", in: 7, want: 7},
	}
	for _, tc := range limits {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
			uc := NewAuditUseCase(repo)

			repo.EXPECT().ListRecent(gomock.Any(), tc.want).Return([]entities.AuditEvent{{ID: "a"}}, nil)

			events, err := uc.ListRecent(context.Background(), tc.in)
			if err != nil || len(events) != 1 {
				t.Fatalf("unexpected events %v err=%v", events, err)
			}
		})
	}
}

func TestActorFrom(t *testing.T) {
	if got := ActorFrom(context.Background()); got != "anonymous" {
		t.Fatalf("expected anonymous, got %q", got)
	}
	if got := ActorFrom(WithActor(context.Background(), "root")); got != "root" {
		t.Fatalf("expected root, got %q", got)
	}
}
