package graph

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when a raw document does not have the
// shape expected after validation.
var ErrMalformedDocument = errors.New("graph: malformed document")

// EdgeInput is one relation as it appears in the input document.
type EdgeInput struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Relation string  `json:"relation"`
	Weight   float64 `json:"weight"`
}

// Document is the typed form of a validated input document.
type Document struct {
	Nodes []string    `json:"nodes"`
	Edges []EdgeInput `json:"edges"`
}

// DocumentFromRaw converts a generically decoded JSON value into a Document.
// The value is expected to have passed validation already; any shape mismatch
// is reported as ErrMalformedDocument.
func DocumentFromRaw(raw any) (*Document, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T", ErrMalformedDocument, raw)
	}

	rawNodes, ok := obj["nodes"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: nodes is not an array", ErrMalformedDocument)
	}
	rawEdges, ok := obj["edges"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: edges is not an array", ErrMalformedDocument)
	}

	doc := &Document{
		Nodes: make([]string, 0, len(rawNodes)),
		Edges: make([]EdgeInput, 0, len(rawEdges)),
	}

	for i, n := range rawNodes {
		name, ok := n.(string)
		if !ok {
			return nil, fmt.Errorf("%w: nodes[%d] is %T", ErrMalformedDocument, i, n)
		}
		doc.Nodes = append(doc.Nodes, name)
	}

	for i, e := range rawEdges {
		fields, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: edges[%d] is %T", ErrMalformedDocument, i, e)
		}
		source, ok1 := fields["source"].(string)
		target, ok2 := fields["target"].(string)
		relation, ok3 := fields["relation"].(string)
		weight, ok4 := toFloat(fields["weight"])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, fmt.Errorf("%w: edges[%d] has wrong field types", ErrMalformedDocument, i)
		}
		doc.Edges = append(doc.Edges, EdgeInput{
			Source:   source,
			Target:   target,
			Relation: relation,
			Weight:   weight,
		})
	}

	return doc, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
