package visualization

import (
	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for initial placement
}

// DefaultLayoutConfig returns a 960x720 canvas with 50 iterations.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Width:      960,
		Height:     720,
		Iterations: 50,
		Padding:    50,
		Seed:       42,
	}
}

// Layout interface for different layout algorithms. Positions are indexed
// by node.
type Layout interface {
	ComputeLayout(g *graph.Graph) []Position
}

// Layout names accepted by NewLayout.
const (
	LayoutForce    = "force"
	LayoutCircular = "circular"
)

// NewLayout returns the layout registered under name, defaulting to
// force-directed.
func NewLayout(name string, config LayoutConfig) Layout {
	switch name {
	case LayoutCircular:
		return NewCircularLayout(&config)
	default:
		return NewForceDirectedLayout(&config)
	}
}
