package main

import (
	"fmt"

	"github.com/akmonengine/swarm"
	"github.com/go-gl/mathgl/mgl64"
)

// ImpactPrinter prints every bounce of the body
type ImpactPrinter struct {
	count int
}

func (p *ImpactPrinter) OnEvent(event swarm.Event) {
	switch e := event.(type) {
	case swarm.ImpactEvent:
		p.count++
		fmt.Printf("  Impact %d: triangle %d, normal %v\n", p.count, e.Index, e.Triangle.Normal)
		fmt.Printf("     at %v, %.4f before the end of the step\n", e.Position, e.Time)
		fmt.Printf("     velocity after: %v\n", e.Velocity)
	case swarm.ResetEvent:
		fmt.Printf("  Reset at t=%v\n", e.Now)
	}
}

// SetupScene creates a body thrown sideways in a small box
func SetupScene() (*swarm.BounceSim, *ImpactPrinter) {
	params := swarm.DefaultBounceParams()
	params.HalfExtent = 3
	params.Restitution = 0.8
	params.Sticky = 0.9

	sim, err := swarm.NewBounce(params, swarm.WithSeed(42))
	if err != nil {
		panic(err)
	}
	sim.Body.Velocity = mgl64.Vec3{4, 2, -1}

	printer := &ImpactPrinter{}
	sim.Events.Subscribe(swarm.IMPACT, printer.OnEvent)
	sim.Events.Subscribe(swarm.RESET, printer.OnEvent)

	return sim, printer
}

func BounceInBox() {
	fmt.Println("Bounce in a box")
	fmt.Println("===============")

	sim, printer := SetupScene()

	fmt.Printf("Initial state:\n")
	fmt.Printf("  Box: %v\n", sim.Surface.Bounds())
	fmt.Printf("  Position: %v\n", sim.Position())
	fmt.Printf("  Velocity: %v\n", sim.Velocity())
	fmt.Printf("  Gravity: %v\n", sim.Gravity)
	fmt.Println()

	const maxTicks int = 100

	for tick := 0; tick < maxTicks; tick++ {
		fmt.Printf("--- TICK %d ---\n", tick+1)

		// reset half way to show the body falling from rest
		sim.Tick(float64(tick), tick == maxTicks/2)

		fmt.Printf("  Position: %v\n", sim.Position())
		fmt.Printf("  Velocity: %v (speed=%.3f)\n", sim.Velocity(), sim.Velocity().Len())
	}

	fmt.Printf("\n%d impacts, done!\n", printer.count)
}

func main() {
	BounceInBox()
}
