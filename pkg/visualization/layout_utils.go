package visualization

import "math"

// fitToBox scales positions uniformly into the padded width x height box and
// centers them, so clusters keep their shape. A single point, or points that
// all coincide, land in the middle of the box.
func fitToBox(positions []Position, width, height, padding float64) []Position {
	fitted := make([]Position, len(positions))
	if len(positions) == 0 {
		return fitted
	}

	lo := Position{X: math.Inf(1), Y: math.Inf(1)}
	hi := Position{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range positions {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
	}

	boxW := math.Max(width-2*padding, 0)
	boxH := math.Max(height-2*padding, 0)
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y

	scale := 0.0
	switch {
	case spanX > 1e-9 && spanY > 1e-9:
		scale = math.Min(boxW/spanX, boxH/spanY)
	case spanX > 1e-9:
		scale = boxW / spanX
	case spanY > 1e-9:
		scale = boxH / spanY
	}

	offX := padding + (boxW-spanX*scale)/2
	offY := padding + (boxH-spanY*scale)/2
	for i, p := range positions {
		fitted[i] = Position{
			X: offX + (p.X-lo.X)*scale,
			Y: offY + (p.Y-lo.Y)*scale,
		}
	}
	return fitted
}
