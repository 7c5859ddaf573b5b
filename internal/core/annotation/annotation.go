// Package annotation holds comment records anchored to document offsets and
// the rating palette used to color text backgrounds.
//
// Offsets are rune indices into the document text. Anchors are captured when a
// comment is saved and are never re-synchronized after later edits, so lookups
// drift if the document changes underneath them.
package annotation

import "github.com/google/uuid"

// Record is a comment anchored to a range of the document.
type Record struct {
	ID     string
	Anchor int    // offset where the annotated range begins
	Text   string // comment body, never empty while stored
	Length int    // number of runes covered, always >= 0
}

// End returns the offset one past the annotated range.
func (r Record) End() int {
	return r.Anchor + r.Length
}

// Contains reports whether offset lies strictly inside the record's range.
// The anchor itself and the end boundary do not match.
func (r Record) Contains(offset int) bool {
	return offset > r.Anchor && offset < r.Anchor+r.Length
}

func newRecord(anchor, length int, text string) Record {
	return Record{
		ID:     uuid.NewString(),
		Anchor: anchor,
		Text:   text,
		Length: max(length, 0),
	}
}
