package swarm

import "testing"

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name     string
		times    []float64
		expected []TickState
	}{
		{
			name:     "unit steps",
			times:    []float64{0, 1, 2, 3},
			expected: []TickState{TICK_FIRST, TICK_CONTINUOUS, TICK_CONTINUOUS, TICK_CONTINUOUS},
		},
		{
			name:     "same time and half steps",
			times:    []float64{5, 5, 5.5, 6},
			expected: []TickState{TICK_FIRST, TICK_CONTINUOUS, TICK_CONTINUOUS, TICK_CONTINUOUS},
		},
		{
			name:     "jump forward restarts",
			times:    []float64{0, 1, 2.5, 3, 4},
			expected: []TickState{TICK_FIRST, TICK_CONTINUOUS, TICK_BROKEN, TICK_FIRST, TICK_CONTINUOUS},
		},
		{
			name:     "rewind restarts",
			times:    []float64{10, 11, 3, 4},
			expected: []TickState{TICK_FIRST, TICK_CONTINUOUS, TICK_BROKEN, TICK_FIRST},
		},
		{
			name:     "gap of exactly one is continuous",
			times:    []float64{0, 1},
			expected: []TickState{TICK_FIRST, TICK_CONTINUOUS},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clock Clock
			for i, now := range tt.times {
				if got := clock.Advance(now); got != tt.expected[i] {
					t.Errorf("Advance(%v) = %v, want %v", now, got, tt.expected[i])
				}
				if clock.Previous() != now {
					t.Errorf("Previous() = %v, want %v", clock.Previous(), now)
				}
			}
		})
	}
}

func TestClockRestart(t *testing.T) {
	var clock Clock
	clock.Advance(0)
	clock.Advance(1)

	clock.Restart()
	if got := clock.Advance(1.5); got != TICK_FIRST {
		t.Errorf("Advance() after Restart() = %v, want TICK_FIRST", got)
	}
}
