package analysis

import "github.com/dd0wney/cluso-kg/pkg/algorithms"

// Report is the complete result of one analysis run. Slices are never nil.
type Report struct {
	Communities []algorithms.Community
	Gaps        []Gap
	Bridges     []Bridge
	Modularity  float64
	NodeCount   int
	EdgeCount   int
}
