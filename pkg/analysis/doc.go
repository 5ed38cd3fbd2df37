// Package analysis runs the concept-graph pipeline: validate the input
// document, build the graph, score centrality, detect communities, then
// derive gaps and bridges into a Report.
//
// The pipeline is synchronous and keeps no package-level state, so separate
// analyses may run concurrently. For a fixed input and fixed seeds two runs
// produce reflect.DeepEqual reports.
package analysis
