package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// ForceDirectedLayout implements Fruchterman-Reingold style layout: all nodes
// repel, connected nodes attract, and moves are capped by a cooling
// temperature. Initial placement is drawn from config.Seed, so the same graph
// always gets the same drawing.
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) []Position {
	n := g.NodeCount()
	if n == 0 {
		return []Position{}
	}

	// Single node - center it
	if n == 1 {
		return []Position{{X: fdl.config.Width / 2, Y: fdl.config.Height / 2}}
	}

	rng := rand.New(rand.NewSource(fdl.config.Seed))
	innerWidth := fdl.config.Width - 2*fdl.config.Padding
	innerHeight := fdl.config.Height - 2*fdl.config.Padding

	positions := make([]Position, n)
	for i := range positions {
		positions[i] = Position{
			X: rng.Float64()*innerWidth + fdl.config.Padding,
			Y: rng.Float64()*innerHeight + fdl.config.Padding,
		}
	}

	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(n)) // Optimal distance
	temperature := fdl.config.Width / 10.0
	forces := make([]Position, n)

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		for i := range forces {
			forces[i] = Position{}
		}

		// Repulsion between all nodes
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[i].X += fx
				forces[i].Y += fy
				forces[j].X -= fx
				forces[j].Y -= fy
			}
		}

		// Attraction between connected nodes
		for _, e := range g.Edges() {
			if e.SelfLoop() {
				continue
			}

			dx := positions[e.U].X - positions[e.V].X
			dy := positions[e.U].Y - positions[e.V].Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[e.U].X -= fx
			forces[e.U].Y -= fy
			forces[e.V].X += fx
			forces[e.V].Y += fy
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for i := range positions {
			fx := forces[i].X
			fy := forces[i].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				positions[i].X += (fx / force) * math.Min(force, temperature) * cool
				positions[i].Y += (fy / force) * math.Min(force, temperature) * cool
			}
		}

		temperature *= 0.95
	}

	return fitToBox(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding)
}
