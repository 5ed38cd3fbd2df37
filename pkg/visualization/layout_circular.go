package visualization

import (
	"math"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// CircularLayout places nodes evenly on a circle, starting at twelve o'clock.
// Nodes are visited breadth first so that neighbors sit next to each other
// and a community forms one arc.
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = DefaultLayoutConfig().Padding
	}
	return &CircularLayout{config: config}
}

// ComputeLayout returns one position per node index.
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) []Position {
	n := g.NodeCount()
	positions := make([]Position, n)
	if n == 0 {
		return positions
	}

	cx, cy := cl.config.Width/2, cl.config.Height/2
	radius := math.Max(math.Min(cx, cy)-cl.config.Padding, 0)
	step := 2 * math.Pi / float64(n)

	for slot, node := range breadthFirstOrder(g) {
		angle := float64(slot)*step - math.Pi/2
		positions[node] = Position{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return positions
}

// breadthFirstOrder lists every node once, exploring each component from its
// lowest index and neighbors in index order.
func breadthFirstOrder(g *graph.Graph) []int {
	n := g.NodeCount()
	order := make([]int, 0, n)
	seen := make([]bool, n)

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		seen[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			order = append(order, u)
			for _, v := range g.Neighbors(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
	return order
}
