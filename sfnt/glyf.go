package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

const glyphHeaderLength = 10

// Flags for decoding a simple glyph's per-point flag stream, matching the
// teacher's GlyphBuf.decodeFlags/decodeCoords bit layout
// (freetype/truetype/truetype.go).
const (
	flagOnCurve              = 1 << iota
	flagXShortVector
	flagYShortVector
	flagRepeat
	flagPositiveXShortVector
	flagPositiveYShortVector
)

const (
	flagThisXIsSame = flagPositiveXShortVector
	flagThisYIsSame = flagPositiveYShortVector
)

// Component flags, grounded on the fuller component flag set documented
// by seehuhn.de/go/sfnt's glyf package (the teacher only decodes the
// args-are-xy-values, more-components, and use-my-metrics bits and
// rejects anything else).
const (
	compArg1And2AreWords      = 0x0001
	compArgsAreXYValues       = 0x0002
	compRoundXYToGrid         = 0x0004
	compWeHaveAScale          = 0x0008
	compMoreComponents        = 0x0020
	compWeHaveAnXAndYScale    = 0x0040
	compWeHaveATwoByTwo       = 0x0080
	compWeHaveInstructions    = 0x0100
	compUseMyMetrics          = 0x0200
	compScaledComponentOffset = 0x0800
)

const f2dot14Scale = 1.0 / 16384.0

// GlyphPoint is one outline point: a coordinate pair plus whether it lies
// on the contour (true) or is an off-curve quadratic control point
// (false).
type GlyphPoint struct {
	X, Y    int16
	OnCurve bool
}

// SimpleGlyph is a glyph whose outline is given directly as contours of
// points (spec.md §3 "Glyf").
type SimpleGlyph struct {
	// EndPts[i] is the index, in Points, of the last point of contour i.
	EndPts []int
	Points []GlyphPoint
}

// Component is one entry in a composite glyph's component list. Arg1/Arg2
// are either an (x, y) offset (ArgsAreXY true) or matched-point indices
// into the parent and child outlines (ArgsAreXY false); Matrix is the
// component's 2x2 transform in row-major (xx, xy, yx, yy) order, already
// converted from F2Dot14 to float64 (spec.md's design note on converting
// fixed-point once at decode time).
type Component struct {
	GlyphIndex            uint16
	Arg1, Arg2            int16
	ArgsAreXY             bool
	Matrix                [4]float64
	UseMyMetrics          bool
	ScaledComponentOffset bool
}

// CompositeGlyph is a glyph defined by references to other glyphs with
// optional per-component transforms (spec.md §3 "Glyf"). Composite
// flattening (resolving components recursively and applying transforms)
// is performed by outline.go, not here: decoding a glyph never needs to
// look at any glyph other than the one requested.
type CompositeGlyph struct {
	Components []Component
}

// Glyph is a decoded glyf entry: exactly one of Simple or Composite is
// non-nil (spec.md's design note on tagged alternatives over raw-buffer
// reinterpretation).
type Glyph struct {
	XMin, YMin, XMax, YMax int16
	Simple                 *SimpleGlyph
	Composite              *CompositeGlyph
}

// Glyf is the parsed glyf table: a raw byte span plus the loca and maxp
// tables needed to look up and bounds-check individual glyph entries.
// Unlike the other tables, glyf is never decoded into a parsed array up
// front (spec.md §3): glyph access is per-call.
type Glyf struct {
	data []byte
	loca *Loca
	maxp *Maxp
}

// loadGlyf wraps the raw glyf bytes; maxp and loca must already be
// loaded. Nothing is decoded here — decoding happens per glyph in
// Decode, and per-glyph failures are non-fatal to the font
// (spec.md §7's "per-glyph failures").
func loadGlyf(b []byte, maxp *Maxp, loca *Loca) (*Glyf, Result) {
	return &Glyf{data: b, loca: loca, maxp: maxp}, ResultSuccess
}

// Decode decodes glyph index gid, returning its header plus either a
// SimpleGlyph or a CompositeGlyph. A glyph with equal consecutive loca
// offsets has no outline: Decode returns a zero-contour SimpleGlyph with
// no points (spec.md §4.6, Testable Property 5).
func (g *Glyf) Decode(gid int) (*Glyph, Result) {
	start, end, ok := g.loca.GlyphRange(gid)
	if !ok {
		return nil, ResultInvalidGlyfHeaderLength
	}
	if start == end {
		return &Glyph{Simple: &SimpleGlyph{}}, ResultSuccess
	}
	if end > uint32(len(g.data)) {
		return nil, ResultInvalidGlyfHeaderLength
	}
	b := g.data[start:end]
	if len(b) < glyphHeaderLength {
		return nil, ResultInvalidGlyfHeaderLength
	}

	c := ttfbin.NewCursor(b)
	numberOfContours := c.I16()
	gl := &Glyph{
		XMin: c.I16(),
		YMin: c.I16(),
		XMax: c.I16(),
		YMax: c.I16(),
	}

	if numberOfContours >= 0 {
		simple, res := decodeSimpleGlyph(c.Bytes(), int(numberOfContours), g.maxp)
		if res != ResultSuccess {
			return nil, res
		}
		gl.Simple = simple
		return gl, ResultSuccess
	}
	if numberOfContours != -1 {
		// TrueType reserves -2 and below for future use; mutt treats any
		// negative contour count other than -1 as a malformed header,
		// since there is only one defined composite encoding.
		return nil, ResultInvalidGlyfHeaderLength
	}
	composite, res := decodeCompositeGlyph(c.Bytes(), g.maxp)
	if res != ResultSuccess {
		return nil, res
	}
	gl.Composite = composite
	return gl, ResultSuccess
}

func decodeSimpleGlyph(b []byte, numContours int, maxp *Maxp) (*SimpleGlyph, Result) {
	if numContours > int(maxp.MaxContours) {
		return nil, ResultGlyfExceedsMaxContours
	}
	if len(b) < numContours*2+2 {
		return nil, ResultInvalidGlyfHeaderLength
	}
	c := ttfbin.NewCursor(b)
	endPts := make([]int, numContours)
	for i := range endPts {
		endPts[i] = int(c.U16())
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = endPts[numContours-1] + 1
	}
	if numPoints > int(maxp.MaxPoints) {
		return nil, ResultGlyfExceedsMaxPoints
	}

	if c.Len() < 2 {
		return nil, ResultInvalidGlyfHeaderLength
	}
	instructionLength := int(c.U16())
	if c.Len() < instructionLength {
		return nil, ResultInvalidGlyfHeaderLength
	}
	c.Skip(instructionLength)

	flags := make([]uint8, numPoints)
	rest := c.Bytes()
	idx := 0
	for idx < numPoints {
		if len(rest) < 1 {
			return nil, ResultInvalidGlyfCoordinates
		}
		f := rest[0]
		rest = rest[1:]
		flags[idx] = f
		idx++
		if f&flagRepeat != 0 {
			if len(rest) < 1 {
				return nil, ResultInvalidGlyfCoordinates
			}
			count := int(rest[0])
			rest = rest[1:]
			for ; count > 0 && idx < numPoints; count-- {
				flags[idx] = f
				idx++
			}
		}
	}

	points := make([]GlyphPoint, numPoints)
	var x int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		points[i].OnCurve = f&flagOnCurve != 0
		if f&flagXShortVector != 0 {
			if len(rest) < 1 {
				return nil, ResultInvalidGlyfCoordinates
			}
			dx := int16(rest[0])
			rest = rest[1:]
			if f&flagPositiveXShortVector == 0 {
				x -= dx
			} else {
				x += dx
			}
		} else if f&flagThisXIsSame == 0 {
			if len(rest) < 2 {
				return nil, ResultInvalidGlyfCoordinates
			}
			x += int16(ttfbin.U16(rest))
			rest = rest[2:]
		}
		points[i].X = x
	}
	var y int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		if f&flagYShortVector != 0 {
			if len(rest) < 1 {
				return nil, ResultInvalidGlyfCoordinates
			}
			dy := int16(rest[0])
			rest = rest[1:]
			if f&flagPositiveYShortVector == 0 {
				y -= dy
			} else {
				y += dy
			}
		} else if f&flagThisYIsSame == 0 {
			if len(rest) < 2 {
				return nil, ResultInvalidGlyfCoordinates
			}
			y += int16(ttfbin.U16(rest))
			rest = rest[2:]
		}
		points[i].Y = y
	}

	return &SimpleGlyph{EndPts: endPts, Points: points}, ResultSuccess
}

func decodeCompositeGlyph(b []byte, maxp *Maxp) (*CompositeGlyph, Result) {
	var components []Component
	for {
		if len(components) >= int(maxp.MaxComponentElements) {
			return nil, ResultGlyfExceedsMaxComponents
		}
		if len(b) < 4 {
			return nil, ResultInvalidGlyfCoordinates
		}
		c := ttfbin.NewCursor(b)
		flags := c.U16()
		glyphIndex := c.U16()

		var arg1, arg2 int16
		if flags&compArg1And2AreWords != 0 {
			if c.Len() < 4 {
				return nil, ResultInvalidGlyfCoordinates
			}
			arg1 = c.I16()
			arg2 = c.I16()
		} else {
			if c.Len() < 2 {
				return nil, ResultInvalidGlyfCoordinates
			}
			arg1 = int16(c.I8())
			arg2 = int16(c.I8())
		}

		m := [4]float64{1, 0, 0, 1}
		switch {
		case flags&compWeHaveATwoByTwo != 0:
			if c.Len() < 8 {
				return nil, ResultInvalidGlyfCoordinates
			}
			m[0] = float64(c.I16()) * f2dot14Scale
			m[1] = float64(c.I16()) * f2dot14Scale
			m[2] = float64(c.I16()) * f2dot14Scale
			m[3] = float64(c.I16()) * f2dot14Scale
		case flags&compWeHaveAnXAndYScale != 0:
			if c.Len() < 4 {
				return nil, ResultInvalidGlyfCoordinates
			}
			m[0] = float64(c.I16()) * f2dot14Scale
			m[3] = float64(c.I16()) * f2dot14Scale
		case flags&compWeHaveAScale != 0:
			if c.Len() < 2 {
				return nil, ResultInvalidGlyfCoordinates
			}
			s := float64(c.I16()) * f2dot14Scale
			m[0], m[3] = s, s
		}

		components = append(components, Component{
			GlyphIndex:            glyphIndex,
			Arg1:                  arg1,
			Arg2:                  arg2,
			ArgsAreXY:             flags&compArgsAreXYValues != 0,
			Matrix:                m,
			UseMyMetrics:          flags&compUseMyMetrics != 0,
			ScaledComponentOffset: flags&compScaledComponentOffset != 0,
		})

		b = c.Bytes()
		if flags&compMoreComponents == 0 {
			// Trailing instructions (guarded by WE_HAVE_INSTRUCTIONS) are
			// neither read nor kept, and are never executed.
			break
		}
	}
	return &CompositeGlyph{Components: components}, ResultSuccess
}
