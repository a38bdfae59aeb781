package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// sfntVersionTrueType is the only sfntVersion this decoder accepts; the
// OpenType/CFF magic ('OTTO') is rejected outright.
const sfntVersionTrueType = 0x00010000

// Table tags, folded into a big-endian uint32 for switch dispatch, matching
// the teacher's readTable/Parse dispatch in freetype/truetype/truetype.go.
const (
	tagMaxp = 0x6D617870
	tagHead = 0x68656164
	tagHhea = 0x68686561
	tagHmtx = 0x686D7478
	tagLoca = 0x6C6F6361
	tagPost = 0x706F7374
	tagName = 0x6E616D65
	tagGlyf = 0x676C7966
	tagCmap = 0x636D6170
)

// TableRecord describes one table entry in the sfnt directory.
type TableRecord struct {
	Tag      [4]byte
	TagUint  uint32
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Directory is the parsed sfnt table directory: the header plus every
// table record it names.
type Directory struct {
	NumTables uint16
	Records   []TableRecord
}

// loadFlagForTag returns the LoadFlags bit a table tag corresponds to, or 0
// if the tag is not one mutt recognizes.
func loadFlagForTag(tagUint uint32) LoadFlags {
	switch tagUint {
	case tagMaxp:
		return LoadMaxp
	case tagHead:
		return LoadHead
	case tagHhea:
		return LoadHhea
	case tagHmtx:
		return LoadHmtx
	case tagLoca:
		return LoadLoca
	case tagPost:
		return LoadPost
	case tagName:
		return LoadName
	case tagGlyf:
		return LoadGlyf
	case tagCmap:
		return LoadCmap
	}
	return 0
}

// loadDirectory parses and validates the sfnt table directory from the
// whole font file buffer data. It verifies the file length, sfntVersion,
// table count, per-record offset/length bounds, checksums (except head, see
// spec.md §4.2), duplicate tags, and required-tag presence.
func loadDirectory(data []byte) (*Directory, LoadFlags, Result) {
	if len(data) < 12 {
		return nil, 0, ResultInvalidDirectoryLength
	}
	c := ttfbin.NewCursor(data)
	if c.U32() != sfntVersionTrueType {
		return nil, 0, ResultInvalidDirectorySFNTVersion
	}
	numTables := c.U16()
	if numTables < 9 {
		return nil, 0, ResultInvalidDirectoryNumTables
	}
	if len(data) < 12+16*int(numTables) {
		return nil, 0, ResultInvalidDirectoryLength
	}
	c.Skip(8) // searchRange, entrySelector, rangeShift

	dir := &Directory{
		NumTables: numTables,
		Records:   make([]TableRecord, numTables),
	}
	var found LoadFlags
	for i := range dir.Records {
		rec := &dir.Records[i]
		rec.Tag = c.Tag()
		rec.TagUint = ttfbin.TagToUint32(rec.Tag)

		for j := 0; j < i; j++ {
			if dir.Records[j].TagUint == rec.TagUint {
				return nil, 0, ResultInvalidDirectoryRecordTableTag
			}
		}
		found |= loadFlagForTag(rec.TagUint)

		rec.Checksum = c.U32()
		rec.Offset = c.U32()
		if rec.Offset > uint32(len(data)) {
			// Offset == len(data) is valid for a zero-length table (e.g. an
			// all-empty glyf) placed at the end of the file; the combined
			// offset+length check below still catches an offset that runs
			// past the buffer once length is known.
			return nil, 0, ResultInvalidDirectoryRecordOffset
		}
		rec.Length = c.U32()
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(data)) {
			return nil, 0, ResultInvalidDirectoryRecordLength
		}

		if rec.TagUint != tagHead {
			// head contains its own checksum adjustment and is excluded
			// from verification (spec.md §4.2).
			if tableChecksum(data[rec.Offset:rec.Offset+rec.Length]) != rec.Checksum {
				return nil, 0, ResultInvalidDirectoryRecordChecksum
			}
		}
	}

	if found&LoadRequired != LoadRequired {
		return nil, 0, ResultMissingDirectoryRecordTableTags
	}
	return dir, found, ResultSuccess
}

// find returns the table record for tagUint and whether it was present.
func (d *Directory) find(tagUint uint32) (TableRecord, bool) {
	for _, rec := range d.Records {
		if rec.TagUint == tagUint {
			return rec, true
		}
	}
	return TableRecord{}, false
}

// bytes returns the raw bytes for rec, sliced out of the whole-file data.
func (rec TableRecord) bytes(data []byte) []byte {
	return data[rec.Offset : rec.Offset+rec.Length]
}
