package sfnt

// ScratchSize computes the worst-case number of GlyphPoint and Component
// values needed to decode any glyph in a font described by maxp. It is a
// sizing bound only: Glyf.Decode does not accept a caller-supplied buffer
// and allocates its own slices on every call.
type ScratchSize struct {
	// Points is the largest point count a simple glyph in this font can
	// have.
	Points int
	// Components is the largest component count a composite glyph in
	// this font can have.
	Components int
}

// ComputeScratchSize derives the worst-case bound from maxp's resource
// maxima.
func ComputeScratchSize(maxp *Maxp) ScratchSize {
	return ScratchSize{
		Points:     int(maxp.MaxPoints),
		Components: int(maxp.MaxComponentElements),
	}
}
