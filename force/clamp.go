package force

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// prioritize spends the acceleration budget in strict order: avoidance, then
// velocity matching, then centering. A drive that overflows what is left is
// clamped to it and every lower priority drive is dropped.
func prioritize(budget float64, drives ...mgl64.Vec3) mgl64.Vec3 {
	var total mgl64.Vec3

	for _, drive := range drives {
		l := drive.Len()
		if l > budget {
			return total.Add(actor.ClampLen(drive, budget))
		}
		budget -= l
		total = total.Add(drive)
	}

	return total
}
