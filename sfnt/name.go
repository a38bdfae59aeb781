package sfnt

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/mutype/mutt/internal/ttfbin"
)

const nameHeaderLength = 6
const nameRecordLength = 12

// NameRecord is one entry in the name table's record array: the raw
// platform/encoding/language/name identifiers plus the (offset, length)
// of its string within the owned storage block.
type NameRecord struct {
	PlatformID         uint16
	EncodingID         uint16
	LanguageID         uint16
	NameID             uint16
	Offset, Length     uint16
}

// LangTagRecord is one version-1 language-tag record: a UTF-16BE string
// giving an IETF BCP 47 language tag, referenced the same way name
// records reference storage.
type LangTagRecord struct {
	Offset, Length uint16
}

// Name holds the parsed contents of the name table (spec.md §4.4). The
// storage block is copied into owned memory once at load time so the raw
// file buffer need not outlive the font.
type Name struct {
	Version  uint16
	Records  []NameRecord
	LangTags []LangTagRecord
	storage  []byte
}

// loadName parses the name table.
func loadName(b []byte) (*Name, Result) {
	if len(b) < nameHeaderLength {
		return nil, ResultInvalidNameLength
	}
	c := ttfbin.NewCursor(b)
	version := c.U16()
	if version != 0 && version != 1 {
		return nil, ResultInvalidNameVersion
	}
	count := int(c.U16())
	storageOffset := c.U16()

	need := nameHeaderLength + nameRecordLength*count
	if len(b) < need {
		return nil, ResultInvalidNameLength
	}

	n := &Name{Version: version, Records: make([]NameRecord, count)}
	for i := range n.Records {
		r := &n.Records[i]
		r.PlatformID = c.U16()
		r.EncodingID = c.U16()
		r.LanguageID = c.U16()
		r.NameID = c.U16()
		r.Length = c.U16()
		r.Offset = c.U16()
	}

	if version == 1 {
		if len(b) < need+2 {
			return nil, ResultInvalidNameLength
		}
		langTagCount := int(c.U16())
		need += 2 + 4*langTagCount
		if len(b) < need {
			return nil, ResultInvalidNameLength
		}
		n.LangTags = make([]LangTagRecord, langTagCount)
		for i := range n.LangTags {
			n.LangTags[i].Length = c.U16()
			n.LangTags[i].Offset = c.U16()
		}
	}

	if int(storageOffset) > len(b) {
		return nil, ResultInvalidNameStorageOffset
	}
	storage := b[storageOffset:]
	for _, r := range n.Records {
		if int(r.Offset)+int(r.Length) > len(storage) {
			return nil, ResultInvalidNameLengthOffset
		}
	}
	for _, lt := range n.LangTags {
		if int(lt.Offset)+int(lt.Length) > len(storage) {
			return nil, ResultInvalidNameLengthOffset
		}
	}

	// Copy once, so Name never aliases the caller's buffer. (The Font as a
	// whole still keeps that buffer: Font.data and the Glyf table slice it.)
	n.storage = append([]byte(nil), storage...)
	return n, ResultSuccess
}

// rawBytes returns the raw storage span for record i.
func (n *Name) rawBytes(i int) []byte {
	r := n.Records[i]
	return n.storage[r.Offset : r.Offset+r.Length]
}

// String decodes and returns the string for name record i as UTF-8.
// Platform 3 (Windows) and platform 0 (Unicode) records are UTF-16BE;
// platform 1 (Macintosh), encoding 0, is decoded as Mac Roman; any other
// platform/encoding combination is returned as the raw bytes interpreted
// as Latin-1, since mutt does not carry a full Macintosh encoding table.
func (n *Name) String(i int) string {
	raw := n.rawBytes(i)
	rec := n.Records[i]
	switch {
	case rec.PlatformID == 3, rec.PlatformID == 0:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return ""
		}
		return string(out)
	case rec.PlatformID == 1 && rec.EncodingID == 0:
		out, err := charmap.MacintoshRoman.NewDecoder().Bytes(raw)
		if err != nil {
			return ""
		}
		return string(out)
	default:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return ""
		}
		return string(out)
	}
}

// LangTag decodes and returns the language tag string for LangTags[i].
func (n *Name) LangTag(i int) string {
	lt := n.LangTags[i]
	raw := n.storage[lt.Offset : lt.Offset+lt.Length]
	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}
