// Package sfnt is a validating parser for the TrueType sfnt container
// format. It parses the table directory, the nine required tables, and
// decodes simple and composite glyph outlines, producing a
// rasterization-ready outline scaled to a pixel size. It does not execute
// TrueType hinting instructions, read CFF/OpenType-CFF outlines, perform
// glyph layout/shaping/kerning, or write font files — those are out of
// scope, as is the pixel-filling rasterizer that would consume the
// outlines this package produces.
package sfnt

import "go.uber.org/zap"

// LoadFlags selects which tables Load attempts to parse.
type LoadFlags uint32

// Individual table flags, matching the bit positions of the original
// format this decoder's design is based on.
const (
	LoadMaxp LoadFlags = 1 << iota
	LoadHead
	LoadHhea
	LoadHmtx
	LoadLoca
	LoadPost
	LoadName
	LoadGlyf
	LoadCmap
)

// LoadRequired selects every table required by the TrueType specification.
const LoadRequired = LoadMaxp | LoadHead | LoadHhea | LoadHmtx | LoadLoca | LoadPost | LoadName | LoadGlyf | LoadCmap

// LoadAll selects every table this package knows how to parse.
const LoadAll LoadFlags = 0xFFFFFFFF

// Options controls optional behavior of Load.
type Options struct {
	// Logger receives structured debug records for the directory load
	// outcome, each table load outcome, and the end of dependency
	// resolution (with the number of passes). Glyph decoding does not log.
	// A nil Logger means no logging (the default).
	Logger *zap.Logger
}

// Font is the top-level handle for a loaded TrueType font: the directory,
// every table that was requested and successfully parsed, and a result
// code for every requested table recording why it did or didn't load.
//
// For every table requested in flags, its parsed field is non-nil if and
// only if its Result field is ResultSuccess. A table that was not requested
// keeps a nil parsed field and the zero Result, which is ResultSuccess.
// A *Font is safe to share across goroutines once Load has
// returned: it is read-only from that point on.
type Font struct {
	Directory *Directory

	Maxp *Maxp
	Head *Head
	Hhea *Hhea
	Hmtx *Hmtx
	Loca *Loca
	Post *Post
	Name *Name
	Glyf *Glyf
	Cmap *Cmap

	MaxpResult Result
	HeadResult Result
	HheaResult Result
	HmtxResult Result
	LocaResult Result
	PostResult Result
	NameResult Result
	GlyfResult Result
	CmapResult Result

	data []byte
}

// Load parses the sfnt directory in data and then the tables selected by
// flags, in dependency order (see the resolver in resolve.go). It returns
// the font handle and an overall Result: a directory-level failure is
// fatal and returns a nil *Font; a successfully-loaded directory with some
// non-fatal per-table failures returns a usable *Font alongside
// ResultSuccess — callers distinguish "font loaded with some tables
// missing" from "font did not load" by checking whether font is nil, and
// inspect individual Result fields (e.g. font.GlyfResult) for per-table
// detail.
func Load(data []byte, flags LoadFlags, opts *Options) (*Font, Result) {
	var log *zap.Logger
	if opts != nil {
		log = opts.Logger
	}
	log = loggerOrNop(log)

	dir, present, res := loadDirectory(data)
	if res != ResultSuccess {
		log.Debug("directory load failed", zap.String("result", res.Name()))
		return nil, res
	}
	log.Debug("directory loaded", zap.Uint16("numTables", dir.NumTables))

	f := &Font{Directory: dir, data: data}
	initTableResults(f, flags)
	resolveAndLoad(f, data, flags, present, log)
	return f, ResultSuccess
}

// initTableResults sets every requested table's result to
// ResultFailedFindTable up front; the resolver overwrites each as it
// either finds and loads the table or determines it can never load.
func initTableResults(f *Font, flags LoadFlags) {
	if flags&LoadMaxp != 0 {
		f.MaxpResult = ResultFailedFindTable
	}
	if flags&LoadHead != 0 {
		f.HeadResult = ResultFailedFindTable
	}
	if flags&LoadHhea != 0 {
		f.HheaResult = ResultFailedFindTable
	}
	if flags&LoadHmtx != 0 {
		f.HmtxResult = ResultFailedFindTable
	}
	if flags&LoadLoca != 0 {
		f.LocaResult = ResultFailedFindTable
	}
	if flags&LoadPost != 0 {
		f.PostResult = ResultFailedFindTable
	}
	if flags&LoadName != 0 {
		f.NameResult = ResultFailedFindTable
	}
	if flags&LoadGlyf != 0 {
		f.GlyfResult = ResultFailedFindTable
	}
	if flags&LoadCmap != 0 {
		f.CmapResult = ResultFailedFindTable
	}
}

// Close releases every resource the Font owns. After Close, the Font must
// not be used. Close exists to mirror the explicit teardown spec.md
// describes (§3 "Font handle" lifecycle); in Go the garbage collector would
// reclaim everything Close clears, but keeping the call makes the
// ownership lifecycle explicit and gives callers a single point to drop
// the reference to the backing file buffer.
func (f *Font) Close() {
	f.data = nil
	f.Directory = nil
	f.Maxp, f.Head, f.Hhea = nil, nil, nil
	f.Hmtx, f.Loca, f.Post = nil, nil, nil
	f.Name, f.Glyf, f.Cmap = nil, nil, nil
}
