package sfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadName_Version0(t *testing.T) {
	// One record: platform 3 (Windows), encoding 1, language 0x409,
	// nameID 1, holding the UTF-16BE string "Ab".
	str := []byte{0, 'A', 0, 'b'}
	header := make([]byte, nameHeaderLength)
	putU16(header[0:], 0) // version
	putU16(header[2:], 1) // count
	putU16(header[4:], nameHeaderLength+nameRecordLength)

	rec := make([]byte, nameRecordLength)
	putU16(rec[0:], 3)          // platformID
	putU16(rec[2:], 1)          // encodingID
	putU16(rec[4:], 0x0409)     // languageID
	putU16(rec[6:], 1)          // nameID
	putU16(rec[8:], uint16(len(str))) // length
	putU16(rec[10:], 0)         // offset

	b := append(append(header, rec...), str...)
	n, res := loadName(b)
	require.Equal(t, ResultSuccess, res)
	require.Len(t, n.Records, 1)
	assert.Equal(t, "Ab", n.String(0))
}

func TestLoadName_MacRomanString(t *testing.T) {
	header := make([]byte, nameHeaderLength)
	putU16(header[2:], 1)
	putU16(header[4:], nameHeaderLength+nameRecordLength)

	rec := make([]byte, nameRecordLength)
	putU16(rec[0:], 1) // platformID: Macintosh
	putU16(rec[2:], 0) // encodingID: Roman
	putU16(rec[8:], 2) // length
	putU16(rec[10:], 0)

	b := append(append(header, rec...), []byte("Hi")...)
	n, res := loadName(b)
	require.Equal(t, ResultSuccess, res)
	assert.Equal(t, "Hi", n.String(0))
}

func TestLoadName_StorageOffsetOutOfRange(t *testing.T) {
	header := make([]byte, nameHeaderLength)
	putU16(header[2:], 0) // count = 0
	putU16(header[4:], 9999)

	_, res := loadName(header)
	assert.Equal(t, ResultInvalidNameStorageOffset, res)
}

func TestLoadName_RecordLengthOutOfRange(t *testing.T) {
	header := make([]byte, nameHeaderLength)
	putU16(header[2:], 1)
	putU16(header[4:], nameHeaderLength+nameRecordLength)

	rec := make([]byte, nameRecordLength)
	putU16(rec[8:], 100) // length far exceeds actual storage
	putU16(rec[10:], 0)

	b := append(header, rec...) // no storage bytes follow
	_, res := loadName(b)
	assert.Equal(t, ResultInvalidNameLengthOffset, res)
}

func TestLoadName_Version1LangTags(t *testing.T) {
	header := make([]byte, nameHeaderLength)
	putU16(header[0:], 1) // version
	putU16(header[2:], 0) // count = 0
	storageOffset := nameHeaderLength + 2 + 4 // no records, one langtag record
	putU16(header[4:], uint16(storageOffset))

	langTagCountAndRecord := make([]byte, 2+4)
	putU16(langTagCountAndRecord[0:], 1) // langTagCount
	putU16(langTagCountAndRecord[2:], 4) // length (2 UTF-16BE code units)
	putU16(langTagCountAndRecord[4:], 0) // offset

	tagStr := []byte{0, 'e', 0, 'n'} // UTF-16BE "en"
	b := append(append(header, langTagCountAndRecord...), tagStr...)

	n, res := loadName(b)
	require.Equal(t, ResultSuccess, res)
	require.Len(t, n.LangTags, 1)
	assert.Equal(t, "en", n.LangTag(0))
}

func TestLoadName_BadVersion(t *testing.T) {
	header := make([]byte, nameHeaderLength)
	putU16(header[0:], 2)
	_, res := loadName(header)
	assert.Equal(t, ResultInvalidNameVersion, res)
}
