package report

import (
	"sort"

	"github.com/hay-kot/marginalia/internal/core/annotation"
)

// Comment is the JSON form of a stored comment.
type Comment struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Quote string `json:"quote"`
	Text  string `json:"text"`
}

// RatingEntry is the JSON form of a rating run.
type RatingEntry struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`
	Value *int   `json:"value"`
	Quote string `json:"quote"`
}

// Document is the machine-readable report.
type Document struct {
	Title    string        `json:"title"`
	Comments []Comment     `json:"comments"`
	Ratings  []RatingEntry `json:"ratings"`
}

// JSON converts in to its machine-readable form. Comments are ordered by
// anchor; a rating whose color is outside the palette has a null value.
func JSON(in Input) Document {
	text := []rune(in.Text)

	records := append([]annotation.Record(nil), in.Records...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Anchor < records[j].Anchor
	})

	doc := Document{
		Title:    in.Title,
		Comments: make([]Comment, 0, len(records)),
		Ratings:  make([]RatingEntry, 0, len(in.Ratings)),
	}

	for _, rec := range records {
		doc.Comments = append(doc.Comments, Comment{
			ID:    rec.ID,
			Start: rec.Anchor,
			End:   rec.End(),
			Quote: slice(text, rec.Anchor, rec.Length),
			Text:  rec.Text,
		})
	}

	for _, r := range in.Ratings {
		entry := RatingEntry{
			Start: r.Index,
			End:   r.Index + r.Length,
			Color: r.Color,
			Quote: slice(text, r.Index, r.Length),
		}
		if r.Value >= 0 {
			v := r.Value
			entry.Value = &v
		}
		doc.Ratings = append(doc.Ratings, entry)
	}

	return doc
}
