package sfnt

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// RasterPoint is one point of a ready-to-rasterize outline: pixel-space
// coordinates plus the on-curve flag carried through from the decoded
// glyph unchanged (spec.md §3 "Ready glyph").
type RasterPoint struct {
	X, Y    fixed.Int26_6
	OnCurve bool
}

// Outline is the flattened, scaled, origin-translated result of §4.7's
// outline-to-raster transform: every composite component resolved and
// merged into a single list of contours, ready to be handed to an
// external rasterizer. Bounds.Min is always (0, 0) by construction.
type Outline struct {
	Contours [][]RasterPoint
	Bounds   fixed.Rectangle26_6
}

type flatPoint struct {
	X, Y    float64
	OnCurve bool
}

// Outline decodes glyph index gid and produces its scaled, ready-to-
// rasterize outline for the given point size and pixels-per-inch
// (spec.md §4.7). head and glyf must both be loaded.
func (f *Font) Outline(gid int, pointSize, ppi float64) (*Outline, Result) {
	if f.HeadResult != ResultSuccess || f.GlyfResult != ResultSuccess || f.MaxpResult != ResultSuccess {
		return nil, ResultGlyfRequiresMaxp
	}
	componentCount := 0
	contours, res := f.flattenGlyph(gid, 0, &componentCount)
	if res != ResultSuccess {
		return nil, res
	}

	scale := (pointSize * ppi) / (72.0 * float64(f.Head.UnitsPerEm))

	minX, minY := math.Inf(1), math.Inf(1)
	for _, c := range contours {
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
		}
	}
	if len(contours) == 0 {
		minX, minY = 0, 0
	}

	out := &Outline{Contours: make([][]RasterPoint, len(contours))}
	var maxX, maxY fixed.Int26_6
	for i, c := range contours {
		rc := make([]RasterPoint, len(c))
		for j, p := range c {
			px := toFix26_6((p.X - minX) * scale)
			py := toFix26_6((p.Y - minY) * scale)
			rc[j] = RasterPoint{X: px, Y: py, OnCurve: p.OnCurve}
			if px > maxX {
				maxX = px
			}
			if py > maxY {
				maxY = py
			}
		}
		out.Contours[i] = rc
	}
	out.Bounds = fixed.Rectangle26_6{Min: fixed.Point26_6{}, Max: fixed.Point26_6{X: maxX, Y: maxY}}
	return out, ResultSuccess
}

func toFix26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// flattenGlyph recursively expands glyph gid into a flat list of contours
// in FUnit space, applying every composite component's transform and
// resolving matched-point arguments against the already-accumulated
// parent outline (spec.md §4.7). depth and componentCount are checked
// against maxp's bounds on the way down, mirroring the recursion guard in
// the teacher's GlyphBuf.load/loadCompound.
func (f *Font) flattenGlyph(gid int, depth int, componentCount *int) ([]flatContour, Result) {
	if depth > int(f.Maxp.MaxComponentDepth) {
		return nil, ResultGlyfExceedsMaxDepth
	}
	gl, res := f.Glyf.Decode(gid)
	if res != ResultSuccess {
		return nil, res
	}

	if gl.Simple != nil {
		return simpleToContours(gl.Simple), ResultSuccess
	}

	var parent []flatContour
	for _, comp := range gl.Composite.Components {
		*componentCount++
		if *componentCount > int(f.Maxp.MaxComponentElements) {
			return nil, ResultGlyfExceedsMaxComponents
		}
		child, res := f.flattenGlyph(int(comp.GlyphIndex), depth+1, componentCount)
		if res != ResultSuccess {
			return nil, res
		}

		xx, xy, yx, yy := comp.Matrix[0], comp.Matrix[1], comp.Matrix[2], comp.Matrix[3]
		transformed := make([]flatContour, len(child))
		for i, c := range child {
			tc := make(flatContour, len(c))
			for j, p := range c {
				tc[j] = flatPoint{
					X:       xx*p.X + yx*p.Y,
					Y:       xy*p.X + yy*p.Y,
					OnCurve: p.OnCurve,
				}
			}
			transformed[i] = tc
		}

		var dx, dy float64
		if comp.ArgsAreXY {
			dx, dy = float64(comp.Arg1), float64(comp.Arg2)
			if comp.ScaledComponentOffset {
				sdx := xx*dx + yx*dy
				sdy := xy*dx + yy*dy
				dx, dy = sdx, sdy
			}
		} else {
			// Matched points: resolve the parent's reference point
			// (already-accumulated outline) and the child's reference
			// point (post-transform, pre-translation), then translate the
			// whole child so the two coincide.
			parentPt, ok := nthPoint(parent, int(comp.Arg1))
			if !ok {
				return nil, ResultInvalidGlyfCoordinates
			}
			childPt, ok := nthPoint(transformed, int(comp.Arg2))
			if !ok {
				return nil, ResultInvalidGlyfCoordinates
			}
			dx = parentPt.X - childPt.X
			dy = parentPt.Y - childPt.Y
		}

		for _, c := range transformed {
			for j := range c {
				c[j].X += dx
				c[j].Y += dy
			}
		}
		parent = append(parent, transformed...)
	}
	return parent, ResultSuccess
}

type flatContour = []flatPoint

func simpleToContours(s *SimpleGlyph) []flatContour {
	contours := make([]flatContour, len(s.EndPts))
	start := 0
	for i, end := range s.EndPts {
		c := make(flatContour, 0, end-start+1)
		for j := start; j <= end; j++ {
			p := s.Points[j]
			c = append(c, flatPoint{X: float64(p.X), Y: float64(p.Y), OnCurve: p.OnCurve})
		}
		contours[i] = c
		start = end + 1
	}
	return contours
}

// nthPoint returns the n'th point across a flattened contour list, in
// contour-major, point-minor order, matching how loca/glyf-derived point
// indices are defined to number points within a glyph.
func nthPoint(contours []flatContour, n int) (flatPoint, bool) {
	if n < 0 {
		return flatPoint{}, false
	}
	for _, c := range contours {
		if n < len(c) {
			return c[n], true
		}
		n -= len(c)
	}
	return flatPoint{}, false
}
