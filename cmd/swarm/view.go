package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLeader   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBounce   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleJiggle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewport projects the XY plane of [-Extent, Extent]^2 on a terminal
type Viewport struct {
	Width, Height int
	Extent        float64
}

// Project returns the cell of p, and false when p is off screen.
// The last row is kept for the status line.
func (v Viewport) Project(p mgl64.Vec3) (int, int, bool) {
	rows := v.Height - 1
	if v.Width <= 0 || rows <= 0 || v.Extent <= 0 {
		return 0, 0, false
	}

	x := int(math.Floor((p.X() + v.Extent) / (2 * v.Extent) * float64(v.Width-1)))
	y := int(math.Floor((v.Extent - p.Y()) / (2 * v.Extent) * float64(rows-1)))
	if x < 0 || x >= v.Width || y < 0 || y >= rows {
		return 0, 0, false
	}

	return x, y, true
}

type viewer struct {
	screen tcell.Screen
	scene  *Scene
	extent float64
	paused bool
	frame  Frame
}

// View draws the scene in the terminal until ctx is done or the user quits.
// Space pauses, n steps while paused, r resets the bouncing body and the jiggle point.
func View(ctx context.Context, conf *Config) error {
	scene, err := NewScene(conf)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{screen: screen, scene: scene, extent: conf.Bounce.HalfExtent}
	if !conf.Bounce.Enabled || v.extent <= 0 {
		v.extent = 2 * conf.Flock.RangeRamp
	}
	v.frame = scene.Advance()

	ticker := time.NewTicker(time.Second / time.Duration(conf.Server.FrameRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(screen, eventChan, done)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if !v.paused {
				v.frame = scene.Advance()
			}
			v.draw()
		}
	}
}

// pollEvents forwards the screen events until the screen is finalized or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			if v.paused {
				v.frame = v.scene.Advance()
			}
		case 'r':
			v.scene.Reset()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	viewport := Viewport{Width: width, Height: height, Extent: v.extent}

	for _, corner := range []mgl64.Vec3{{-v.extent, v.extent, 0}, {v.extent, v.extent, 0}, {-v.extent, -v.extent, 0}, {v.extent, -v.extent, 0}} {
		if x, y, ok := viewport.Project(corner); ok {
			v.screen.SetContent(x, y, '+', nil, styleBorder)
		}
	}

	for i, p := range v.frame.Flock {
		x, y, ok := viewport.Project(p)
		if !ok {
			continue
		}
		if i == v.frame.Leader {
			v.screen.SetContent(x, y, '@', nil, styleLeader)
		} else {
			v.screen.SetContent(x, y, '*', nil, styleParticle)
		}
	}
	if v.frame.Jiggle != nil {
		if x, y, ok := viewport.Project(*v.frame.Jiggle); ok {
			v.screen.SetContent(x, y, 'o', nil, styleJiggle)
		}
	}
	if v.frame.Bounce != nil {
		if x, y, ok := viewport.Project(*v.frame.Bounce); ok {
			v.screen.SetContent(x, y, 'O', nil, styleBounce)
		}
	}

	status := fmt.Sprintf("tick %d  n %d  speed %.2f±%.2f  polarization %.2f  spread %.2f",
		v.frame.Tick, v.frame.Stats.Count, v.frame.Stats.MeanSpeed, v.frame.Stats.SpeedStdDev,
		v.frame.Stats.Polarization, v.frame.Stats.Spread)
	if v.paused {
		status += "  [paused]"
	}
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, styleStatus)
	}

	v.screen.Show()
}
