package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

const postLength = 32

// macRomanGlyphNames is the standard 258-entry Macintosh glyph name table
// used by post format 1.0 directly, and by format 2.0 for any
// glyphNameIndex value below 258. Grounded on the standard Macintosh
// ordering (HarfBuzz's hb-ot-post-macroman.hh and equivalent tables).
var macRomanGlyphNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam",
	"quotedbl", "numbersign", "dollar", "percent", "ampersand",
	"quotesingle", "parenleft", "parenright", "asterisk", "plus",
	"comma", "hyphen", "period", "slash", "zero",
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "colon",
	"semicolon", "less", "equal", "greater", "question",
	"at", "A", "B", "C", "D",
	"E", "F", "G", "H", "I",
	"J", "K", "L", "M", "N",
	"O", "P", "Q", "R", "S",
	"T", "U", "V", "W", "X",
	"Y", "Z", "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore", "grave", "a", "b",
	"c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l",
	"m", "n", "o", "p", "q",
	"r", "s", "t", "u", "v",
	"w", "x", "y", "z", "braceleft",
	"bar", "braceright", "asciitilde", "Adieresis", "Aring",
	"Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis",
	"aacute", "agrave", "acircumflex", "adieresis", "atilde",
	"aring", "ccedilla", "eacute", "egrave", "ecircumflex",
	"edieresis", "iacute", "igrave", "icircumflex", "idieresis",
	"ntilde", "oacute", "ograve", "ocircumflex", "odieresis",
	"otilde", "uacute", "ugrave", "ucircumflex", "udieresis",
	"dagger", "degree", "cent", "sterling", "section",
	"bullet", "paragraph", "germandbls", "registered", "copyright",
	"trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal",
	"yen", "mu", "partialdiff", "summation", "product",
	"pi", "integral", "ordfeminine", "ordmasculine", "Omega",
	"ae", "oslash", "questiondown", "exclamdown", "logicalnot",
	"radical", "florin", "approxequal", "Delta", "guillemotleft",
	"guillemotright", "ellipsis", "nonbreakingspace", "Agrave", "Atilde",
	"Otilde", "OE", "oe", "endash", "emdash",
	"quotedblleft", "quotedblright", "quoteleft", "quoteright", "divide",
	"lozenge", "ydieresis", "Ydieresis", "fraction", "currency",
	"guilsinglleft", "guilsinglright", "fi", "fl", "daggerdbl",
	"periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute",
	"Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	"apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve",
	"dotaccent", "ring", "cedilla", "hungarumlaut", "ogonek",
	"caron", "Lslash", "lslash", "Scaron", "scaron",
	"Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus",
	"multiply", "onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute",
	"Ccaron", "ccaron", "dcroat",
}

// Post holds the parsed contents of the post table: the fixed header
// fields every version carries, plus, for format 2.0, the per-glyph name
// index array and the custom-name Pascal-string pool.
type Post struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32

	glyphNameIndex []uint16
	names          []string // parsed custom names, format 2.0 only
}

// loadPost parses the post table: format 1.0 (standard Mac glyph order),
// 2.0 (custom names via glyphNameIndex + Pascal-string pool), 2.5
// (deprecated, tolerated as a header-only read), and 3.0 (no names).
func loadPost(b []byte) (*Post, Result) {
	if len(b) < postLength {
		return nil, ResultInvalidPostLength
	}
	c := ttfbin.NewCursor(b)
	p := &Post{}
	p.Version = c.U32()
	p.ItalicAngle = c.I32()
	p.UnderlinePosition = c.I16()
	p.UnderlineThickness = c.I16()
	p.IsFixedPitch = c.U32()
	c.Skip(16) // minMemType42, maxMemType42, minMemType1, maxMemType1

	switch p.Version {
	case 0x00010000, 0x00030000, 0x00025000:
		return p, ResultSuccess

	case 0x00020000:
		if c.Len() < 2 {
			return nil, ResultInvalidPostLength
		}
		numGlyphs := int(c.U16())
		if c.Len() < numGlyphs*2 {
			return nil, ResultInvalidPostLength
		}
		p.glyphNameIndex = make([]uint16, numGlyphs)
		for i := range p.glyphNameIndex {
			p.glyphNameIndex[i] = c.U16()
		}
		pool := c.Bytes()
		names, res := parsePascalStringPool(pool)
		if res != ResultSuccess {
			return nil, res
		}
		for _, idx := range p.glyphNameIndex {
			if idx >= 258 && int(idx)-258 >= len(names) {
				return nil, ResultInvalidPostIndex
			}
		}
		p.names = names
		return p, ResultSuccess

	default:
		return nil, ResultInvalidPostVersion
	}
}

// parsePascalStringPool decodes a run of length-prefixed strings.
func parsePascalStringPool(pool []byte) ([]string, Result) {
	var names []string
	for len(pool) > 0 {
		n := int(pool[0])
		if 1+n > len(pool) {
			return nil, ResultInvalidPostLength
		}
		names = append(names, string(pool[1:1+n]))
		pool = pool[1+n:]
	}
	return names, ResultSuccess
}

// GlyphName returns the name of glyph index gid, or "" if the table
// carries no names (format 3.0) or gid is out of range.
func (p *Post) GlyphName(gid int) string {
	switch p.Version {
	case 0x00010000:
		if gid >= 0 && gid < len(macRomanGlyphNames) {
			return macRomanGlyphNames[gid]
		}
		return ""
	case 0x00020000:
		if gid < 0 || gid >= len(p.glyphNameIndex) {
			return ""
		}
		idx := p.glyphNameIndex[gid]
		if idx < 258 {
			return macRomanGlyphNames[idx]
		}
		custom := int(idx) - 258
		if custom < 0 || custom >= len(p.names) {
			return ""
		}
		return p.names[custom]
	default:
		return ""
	}
}
