package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/platform/fanout"
)

func double(_ context.Context, n int) (int, error) { return n * 2, nil }

func TestRun_Results(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")

	tests := []struct {
		name  string
		items []int
		limit int
		fn    func(context.Context, int) (int, error)
		want  []fanout.Result[int]
	}{
		{"empty", []int{}, 4, double, []fanout.Result[int]{}},
		{"all succeed", []int{1, 2, 3}, 2, double, []fanout.Result[int]{{Value: 2}, {Value: 4}, {Value: 6}}},
		{"limit below one", []int{5, 6}, 0, double, []fanout.Result[int]{{Value: 10}, {Value: 12}}},
		{"limit above len", []int{7}, 16, double, []fanout.Result[int]{{Value: 14}}},
		{
			"partial failure",
			[]int{1, 2, 3},
			3,
			func(_ context.Context, n int) (int, error) {
				if n%2 == 1 {
					return 0, errOdd
				}
				return n, nil
			},
			[]fanout.Result[int]{{Err: errOdd}, {Value: 2}, {Err: errOdd}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Run(context.Background(), tt.limit, tt.items, tt.fn)

			if got == nil || len(got) != len(tt.want) {
				t.Fatalf("Run() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i].Value != tt.want[i].Value || !errors.Is(got[i].Err, tt.want[i].Err) {
					t.Errorf("result[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRun_KeepsIndexUnderReordering(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond}
	got := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, d := range delays {
		if got[i].Value != d {
			t.Errorf("result[%d] = %v, want %v", i, got[i].Value, d)
		}
	}
}

func TestRun_RespectsLimit(t *testing.T) {
	t.Parallel()

	const limit = 2
	var active, peak atomic.Int32

	fanout.Run(context.Background(), limit, make([]struct{}, 10), func(context.Context, struct{}) (struct{}, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency = %d, want at most %d", p, limit)
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	got := fanout.Run(ctx, 1, []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	if calls.Load() != 0 {
		t.Errorf("fn called %d times, want 0 after cancellation", calls.Load())
	}
	for i, r := range got {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result[%d].Err = %v, want %v", i, r.Err, context.Canceled)
		}
	}
}

func TestRun_CanceledWhileQueued(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := fanout.Run(ctx, 1, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if got[0].Err != nil || got[0].Value != 1 {
		t.Errorf("result[0] = %+v, want the started item's value", got[0])
	}
	if !errors.Is(got[1].Err, context.Canceled) {
		t.Errorf("result[1].Err = %v, want %v", got[1].Err, context.Canceled)
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	t.Parallel()

	got := fanout.Run(context.Background(), 2, []string{"database", "identity-provider"}, func(_ context.Context, name string) (string, error) {
		if name == "identity-provider" {
			panic("nil breaker")
		}
		return name, nil
	})

	if got[0].Err != nil || got[0].Value != "database" {
		t.Errorf("result[0] = %+v, want database", got[0])
	}
	if got[1].Err == nil || !strings.Contains(got[1].Err.Error(), "nil breaker") {
		t.Errorf("result[1].Err = %v, want the recovered panic", got[1].Err)
	}
}
