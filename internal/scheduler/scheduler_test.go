package scheduler

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

type stubRentService struct {
	services.RentServicer
	calls  chan time.Time
	result *services.GenerationResult
}

func (s *stubRentService) GenerateForAllAccounts(month time.Time) (*services.GenerationResult, error) {
	s.calls <- month
	if s.result != nil {
		return s.result, nil
	}
	return &services.GenerationResult{Month: models.MonthStart(month)}, nil
}

func TestRunGeneratesAtStartup(t *testing.T) {
	stub := &stubRentService{calls: make(chan time.Time, 1)}
	s := New(stub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-stub.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a generation run at startup")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected scheduler to stop on context cancel")
	}
}

func TestRunFiresOnMonthBoundary(t *testing.T) {
	stub := &stubRentService{calls: make(chan time.Time, 2)}
	s := New(stub)

	// Pin the clock just before midnight on the first of the next month.
	boundary := nextMonthStart(time.Now())
	s.now = func() time.Time { return boundary.Add(-10 * time.Millisecond) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	<-stub.calls // startup run

	select {
	case at := <-stub.calls:
		if !at.Equal(nextMonthStart(boundary.Add(-10 * time.Millisecond))) {
			t.Errorf("expected generation at %v, got %v", boundary, at)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a generation run at the month boundary")
	}
}

func TestNextMonthStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid_month",
			in:   time.Date(2026, 4, 17, 13, 45, 0, 0, time.UTC),
			want: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december_rolls_over",
			in:   time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "first_of_month_advances",
			in:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextMonthStart(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("nextMonthStart(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
