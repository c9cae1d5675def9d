// Package stats summarizes the state of a particle set.
package stats

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a flock at one instant
type Summary struct {
	Count       int        `json:"count"`
	Centroid    mgl64.Vec3 `json:"centroid"`
	MeanSpeed   float64    `json:"mean_speed"`
	SpeedStdDev float64    `json:"speed_std_dev"` // population standard deviation
	// Polarization is the length of the mean heading: 1 when every moving
	// particle flies the same way, close to 0 for random headings.
	Polarization float64 `json:"polarization"`
	Spread       float64 `json:"spread"` // mean distance to the centroid
}

// Summarize computes the Summary of set. An empty set gives a zero Summary.
func Summarize(set *actor.ParticleSet) Summary {
	n := set.Count()
	if n == 0 {
		return Summary{}
	}

	summary := Summary{Count: n}

	coordinates := make([]float64, n)
	for axis := 0; axis < 3; axis++ {
		for i, p := range set.Positions {
			coordinates[i] = p[axis]
		}
		summary.Centroid[axis] = stat.Mean(coordinates, nil)
	}

	distances := make([]float64, n)
	for i, p := range set.Positions {
		distances[i] = p.Sub(summary.Centroid).Len()
	}
	summary.Spread = stat.Mean(distances, nil)

	speeds := make([]float64, n)
	var heading mgl64.Vec3
	moving := 0
	for i, v := range set.Velocities {
		speeds[i] = v.Len()
		if unit, ok := actor.Unit(v); ok {
			heading = heading.Add(unit)
			moving++
		}
	}
	summary.MeanSpeed, summary.SpeedStdDev = stat.PopMeanStdDev(speeds, nil)
	if moving > 0 {
		summary.Polarization = heading.Len() / float64(moving)
	}

	return summary
}
