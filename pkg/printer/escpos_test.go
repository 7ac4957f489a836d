package printer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentDefaultsWidth(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, 32, d.width)
	// Initialize command must lead the stream.
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes()[:2])
}

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("Subtotal:", "200.00")

	line := string(d.Bytes()[2:]) // skip ESC @
	assert.Len(t, line, 33)       // 32 chars + LF
	assert.Equal(t, "Subtotal:", line[:9])
	assert.Equal(t, "200.00\n", line[26:])
}

func TestKeyValueNeverCollapsesBelowOneSpace(t *testing.T) {
	d := NewDocument(10)
	d.KeyValue("A very long key", "99999.00")

	line := string(d.Bytes()[2:])
	assert.Equal(t, "A very long key 99999.00\n", line)
}

func TestItemLine(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine(2, "Paracetamol", "20.00")

	line := string(d.Bytes()[2:])
	assert.Contains(t, line, "2x Paracetamol")
	assert.Contains(t, line, "20.00\n")
	assert.Len(t, line, 33)
}

func TestSubLineTruncatesToWidth(t *testing.T) {
	d := NewDocument(16)
	d.SubLine("a description far longer than the paper")

	line := string(d.Bytes()[2:])
	assert.Len(t, line, 17) // width + LF
	assert.Equal(t, "  a descriptio", line[:14])
}

func TestSubLineTruncatesOnRuneBoundary(t *testing.T) {
	d := NewDocument(10)
	d.SubLine("aspirin créme fraîche")

	line := string(d.Bytes()[2:])
	require.True(t, utf8.ValidString(line))
	// 10 runes plus the LF; the accented rune at the cut survives intact.
	assert.Equal(t, "  aspirin \n", line)

	d.Reset()
	d.SubLine("généric")
	assert.Equal(t, "  généric\n", string(d.Bytes()[2:]))
}

func TestSeparator(t *testing.T) {
	d := NewDocument(8)
	d.Separator('-')
	assert.Equal(t, "--------\n", string(d.Bytes()[2:]))
}

func TestCutCommands(t *testing.T) {
	d := NewDocument(32)
	d.PartialCut()
	b := d.Bytes()
	assert.Equal(t, []byte{GS, 'V', 0x01}, b[len(b)-3:])
}

func TestResetReinitializes(t *testing.T) {
	d := NewDocument(32)
	d.Text("hello")
	d.Reset()
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}
