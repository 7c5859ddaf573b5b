package annotation

// Store is an insertion-ordered, immutable sequence of records.
//
// Every mutating operation returns a new Store and leaves the receiver
// untouched, so callers can hold on to earlier values without aliasing
// concerns. The zero value is an empty store.
type Store struct {
	records []Record
}

// NewStore returns a store seeded with records, in order. Records with empty
// text are dropped.
func NewStore(records ...Record) Store {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Text == "" {
			continue
		}
		r.Length = max(r.Length, 0)
		out = append(out, r)
	}
	return Store{records: out}
}

// Len returns the number of stored records.
func (s Store) Len() int {
	return len(s.records)
}

// At returns the i-th record in insertion order.
func (s Store) At(i int) Record {
	return s.records[i]
}

// Records returns a copy of the stored records in insertion order.
func (s Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// FindAt returns the first record whose range strictly contains offset:
// Anchor < offset < Anchor+Length. Offsets equal to either boundary never
// match, which means a one-rune annotation can not be found by offset.
func (s Store) FindAt(offset int) (Record, bool) {
	for _, r := range s.records {
		if r.Contains(offset) {
			return r, true
		}
	}
	return Record{}, false
}

// FindAnchor returns the record whose anchor equals anchor exactly.
func (s Store) FindAnchor(anchor int) (Record, bool) {
	if i := s.indexOfAnchor(anchor); i >= 0 {
		return s.records[i], true
	}
	return Record{}, false
}

// UpsertOrDelete applies a comment save against anchor.
//
// Matching uses exact anchor equality, not the open interval used by FindAt.
// An existing record is updated in place (text and length) when text is
// non-empty and removed when text is empty. Without a match, non-empty text
// appends a new record and empty text changes nothing.
func (s Store) UpsertOrDelete(anchor, length int, text string) Store {
	i := s.indexOfAnchor(anchor)

	switch {
	case i >= 0 && text != "":
		out := s.Records()
		out[i].Text = text
		out[i].Length = max(length, 0)
		return Store{records: out}
	case i >= 0:
		out := make([]Record, 0, len(s.records)-1)
		out = append(out, s.records[:i]...)
		out = append(out, s.records[i+1:]...)
		return Store{records: out}
	case text != "":
		out := make([]Record, len(s.records), len(s.records)+1)
		copy(out, s.records)
		out = append(out, newRecord(anchor, length, text))
		return Store{records: out}
	default:
		return s
	}
}

func (s Store) indexOfAnchor(anchor int) int {
	for i, r := range s.records {
		if r.Anchor == anchor {
			return i
		}
	}
	return -1
}
