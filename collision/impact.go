package collision

// Impact is the in/out record of a Surface query.
// Time holds the sweep duration on input and the chosen hit time on output.
type Impact struct {
	Triangle *Triangle
	Index    int // position of Triangle in the surface
	Time     float64
	Hit      bool
}

// NewImpact prepares a query over a sweep of duration tmax
func NewImpact(tmax float64) Impact {
	return Impact{Index: -1, Time: tmax}
}
