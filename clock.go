package swarm

// MaxGap is the largest host time gap, in ticks, still treated as continuous
const MaxGap = 1.0

// TickState classifies a tick against the previous one
type TickState uint8

const (
	// TICK_FIRST is the first tick of a run
	TICK_FIRST TickState = iota
	// TICK_CONTINUOUS follows the previous tick by a gap in [0, MaxGap]
	TICK_CONTINUOUS
	// TICK_BROKEN jumped backward or too far forward; nothing is integrated
	// and the next tick starts a new run
	TICK_BROKEN
)

// Clock remembers the host time of the previous tick
type Clock struct {
	previous float64
	running  bool
}

// Advance records now and classifies it against the previous tick
func (c *Clock) Advance(now float64) TickState {
	if !c.running {
		c.previous = now
		c.running = true

		return TICK_FIRST
	}

	gap := now - c.previous
	c.previous = now
	if gap < 0 || gap > MaxGap {
		c.running = false

		return TICK_BROKEN
	}

	return TICK_CONTINUOUS
}

// Previous returns the host time of the last recorded tick
func (c *Clock) Previous() float64 {
	return c.previous
}

// Restart forgets the previous tick, the next Advance starts a new run
func (c *Clock) Restart() {
	c.running = false
}
