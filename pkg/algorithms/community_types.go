package algorithms

// RankedNode represents a concept with its centrality score
type RankedNode struct {
	Name  string
	Score float64
}

// Community represents a detected community
type Community struct {
	ID       int
	Nodes    []string     // member names, sorted
	TopNodes []RankedNode // highest-centrality members, at most TopNodesPerCommunity
	Size     int
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []Community
	Modularity    float64 // Quality measure of the partitioning
	NodeCommunity []int   // node index -> community ID
}
