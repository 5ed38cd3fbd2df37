package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/graph"
	"github.com/dd0wney/cluso-kg/pkg/visualization"
)

// Node radii in the HTML drawing.
const (
	BridgeNodeSize  = 20
	DefaultNodeSize = 10
)

// Palette colors communities by ID modulo its length.
var Palette = [...]string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#42d4f4", "#f032e6", "#bfef45", "#fabed4",
	"#469990", "#dcbeff", "#9A6324", "#fffac8", "#800000",
	"#aaffc3", "#808000", "#ffd8b1", "#000075", "#a9a9a9",
}

// CommunityColor returns the palette entry for a community ID.
func CommunityColor(id int) string {
	if id < 0 {
		id = -id
	}
	return Palette[id%len(Palette)]
}

// HTMLOptions configures the HTML page.
type HTMLOptions struct {
	Title  string
	Layout string // visualization.LayoutForce or visualization.LayoutCircular
	Config visualization.LayoutConfig
}

// DefaultHTMLOptions returns a force-directed 960x720 page.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Title:  "Knowledge Graph",
		Layout: visualization.LayoutForce,
		Config: visualization.DefaultLayoutConfig(),
	}
}

type htmlNode struct {
	Index     int
	Name      string
	Community int
	Color     string
	Size      int
	Bridge    bool
	X, Y      float64
}

type htmlEdge struct {
	Relation       string
	Weight         float64
	X1, Y1, X2, Y2 float64
}

type htmlLegend struct {
	ID    int
	Size  int
	Color template.CSS
}

// scriptGraph is the only data handed to the page script. It carries indices
// and coordinates, never user-supplied text.
type scriptGraph struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Nodes  [][2]float64 `json:"nodes"`
	Edges  [][2]int     `json:"edges"`
}

type htmlPage struct {
	Title      string
	Width      float64
	Height     float64
	NodeCount  int
	EdgeCount  int
	Modularity float64
	Nodes      []htmlNode
	Edges      []htmlEdge
	Legend     []htmlLegend
	Graph      scriptGraph
}

// HTML writes a self-contained interactive page for the report. Nodes are
// colored by community and bridges are drawn larger; hovering an edge shows
// its relation. Every concept name and relation is escaped by html/template.
func HTML(w io.Writer, report *analysis.Report, g *graph.Graph, opts HTMLOptions) error {
	if opts.Title == "" {
		opts.Title = DefaultHTMLOptions().Title
	}
	if opts.Config.Width <= 0 || opts.Config.Height <= 0 {
		opts.Config = visualization.DefaultLayoutConfig()
	}

	positions := visualization.NewLayout(opts.Layout, opts.Config).ComputeLayout(g)

	community := make(map[string]int, g.NodeCount())
	for _, c := range report.Communities {
		for _, name := range c.Nodes {
			community[name] = c.ID
		}
	}
	bridges := analysis.BridgeSet(report.Bridges)

	page := htmlPage{
		Title:      opts.Title,
		Width:      opts.Config.Width,
		Height:     opts.Config.Height,
		NodeCount:  report.NodeCount,
		EdgeCount:  report.EdgeCount,
		Modularity: report.Modularity,
		Nodes:      make([]htmlNode, g.NodeCount()),
		Edges:      make([]htmlEdge, 0, g.EdgeCount()),
		Legend:     make([]htmlLegend, 0, len(report.Communities)),
		Graph: scriptGraph{
			Width:  opts.Config.Width,
			Height: opts.Config.Height,
			Nodes:  make([][2]float64, g.NodeCount()),
			Edges:  make([][2]int, 0, g.EdgeCount()),
		},
	}

	for i := 0; i < g.NodeCount(); i++ {
		name := g.Name(i)
		cid := community[name]
		size := DefaultNodeSize
		if bridges[name] {
			size = BridgeNodeSize
		}
		page.Nodes[i] = htmlNode{
			Index:     i,
			Name:      name,
			Community: cid,
			Color:     CommunityColor(cid),
			Size:      size,
			Bridge:    bridges[name],
			X:         positions[i].X,
			Y:         positions[i].Y,
		}
		page.Graph.Nodes[i] = [2]float64{positions[i].X, positions[i].Y}
	}

	for _, e := range g.Edges() {
		if e.SelfLoop() {
			continue
		}
		page.Edges = append(page.Edges, htmlEdge{
			Relation: e.Relation,
			Weight:   e.Weight,
			X1:       positions[e.U].X,
			Y1:       positions[e.U].Y,
			X2:       positions[e.V].X,
			Y2:       positions[e.V].Y,
		})
		page.Graph.Edges = append(page.Graph.Edges, [2]int{e.U, e.V})
	}

	for _, c := range report.Communities {
		page.Legend = append(page.Legend, htmlLegend{
			ID:    c.ID,
			Size:  c.Size,
			Color: template.CSS(CommunityColor(c.ID)),
		})
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"coord":  func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"stroke": func(w float64) string { return fmt.Sprintf("%.2f", 1+2*min(w, 2)) },
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; background: #222222; color: #ffffff; font-family: sans-serif; }
  header { padding: 12px 20px; }
  header h1 { margin: 0 0 4px; font-size: 20px; }
  header p { margin: 0; color: #bbbbbb; font-size: 13px; }
  svg { display: block; width: 100%; height: calc(100vh - 140px); background: #222222; }
  line.edge { stroke: #888888; stroke-opacity: 0.6; }
  line.edge:hover { stroke: #ffffff; stroke-opacity: 1; }
  g.node { cursor: grab; }
  g.node text { fill: #ffffff; font-size: 11px; text-anchor: middle; pointer-events: none; }
  g.node.bridge circle { stroke: #ffffff; stroke-width: 2; }
  ul.legend { list-style: none; margin: 0; padding: 8px 20px; display: flex; flex-wrap: wrap; gap: 12px; font-size: 12px; }
  ul.legend span { display: inline-block; width: 10px; height: 10px; margin-right: 4px; border-radius: 50%; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.NodeCount}} concepts, {{.EdgeCount}} relations, {{len .Legend}} communities, modularity {{printf "%.4f" .Modularity}}</p>
</header>
<svg id="graph" viewBox="0 0 {{coord .Width}} {{coord .Height}}" xmlns="http://www.w3.org/2000/svg">
  <g class="edges">
{{- range .Edges}}
    <line class="edge" x1="{{coord .X1}}" y1="{{coord .Y1}}" x2="{{coord .X2}}" y2="{{coord .Y2}}" stroke-width="{{stroke .Weight}}"><title>{{.Relation}}</title></line>
{{- end}}
  </g>
  <g class="nodes">
{{- range .Nodes}}
    <g class="node{{if .Bridge}} bridge{{end}}" data-index="{{.Index}}" transform="translate({{coord .X}} {{coord .Y}})">
      <circle r="{{.Size}}" fill="{{.Color}}"></circle>
      <title>{{.Name}} (Community {{.Community}})</title>
      <text dy="-14">{{.Name}}</text>
    </g>
{{- end}}
  </g>
</svg>
<ul class="legend">
{{- range .Legend}}
  <li><span style="background: {{.Color}}"></span>Community {{.ID}} ({{.Size}})</li>
{{- end}}
</ul>
<script>
(function () {
  var data = {{.Graph}};
  var svg = document.getElementById("graph");
  var nodes = Array.prototype.slice.call(svg.querySelectorAll("g.node"));
  var lines = Array.prototype.slice.call(svg.querySelectorAll("line.edge"));
  var pos = data.nodes.map(function (p) { return { x: p[0], y: p[1] }; });
  var k = Math.sqrt((data.width * data.height) / Math.max(pos.length, 1));
  var dragging = -1;
  var alpha = 0;

  function draw() {
    nodes.forEach(function (el, i) {
      el.setAttribute("transform", "translate(" + pos[i].x + " " + pos[i].y + ")");
    });
    lines.forEach(function (el, j) {
      var e = data.edges[j];
      el.setAttribute("x1", pos[e[0]].x);
      el.setAttribute("y1", pos[e[0]].y);
      el.setAttribute("x2", pos[e[1]].x);
      el.setAttribute("y2", pos[e[1]].y);
    });
  }

  function tick() {
    if (alpha < 0.005) {
      alpha = 0;
      return;
    }
    var n = pos.length;
    var fx = new Float64Array(n);
    var fy = new Float64Array(n);
    for (var i = 0; i < n; i++) {
      for (var j = i + 1; j < n; j++) {
        var dx = pos[i].x - pos[j].x;
        var dy = pos[i].y - pos[j].y;
        var d = Math.max(Math.sqrt(dx * dx + dy * dy), 0.01);
        var f = (k * k) / d;
        fx[i] += dx / d * f; fy[i] += dy / d * f;
        fx[j] -= dx / d * f; fy[j] -= dy / d * f;
      }
    }
    data.edges.forEach(function (e) {
      var dx = pos[e[0]].x - pos[e[1]].x;
      var dy = pos[e[0]].y - pos[e[1]].y;
      var d = Math.sqrt(dx * dx + dy * dy);
      if (d < 0.01) { return; }
      var f = (d * d) / k;
      fx[e[0]] -= dx / d * f; fy[e[0]] -= dy / d * f;
      fx[e[1]] += dx / d * f; fy[e[1]] += dy / d * f;
    });
    var limit = 10 * alpha;
    for (var m = 0; m < n; m++) {
      if (m === dragging) { continue; }
      var mag = Math.sqrt(fx[m] * fx[m] + fy[m] * fy[m]);
      if (mag > 0) {
        pos[m].x += fx[m] / mag * Math.min(mag, limit);
        pos[m].y += fy[m] / mag * Math.min(mag, limit);
      }
    }
    alpha *= 0.95;
    draw();
    window.requestAnimationFrame(tick);
  }

  function reheat() {
    var idle = alpha === 0;
    alpha = Math.max(alpha, 0.3);
    if (idle) { window.requestAnimationFrame(tick); }
  }

  function toGraph(evt) {
    var pt = svg.createSVGPoint();
    pt.x = evt.clientX;
    pt.y = evt.clientY;
    return pt.matrixTransform(svg.getScreenCTM().inverse());
  }

  nodes.forEach(function (el, i) {
    el.addEventListener("pointerdown", function (evt) {
      dragging = i;
      el.setPointerCapture(evt.pointerId);
    });
  });
  svg.addEventListener("pointermove", function (evt) {
    if (dragging === -1) { return; }
    var p = toGraph(evt);
    pos[dragging].x = p.x;
    pos[dragging].y = p.y;
    draw();
    reheat();
  });
  svg.addEventListener("pointerup", function () { dragging = -1; });
})();
</script>
</body>
</html>
`
