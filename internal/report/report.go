// Package report builds the annotation summary printed when the editor exits.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/richtext"
	"github.com/hay-kot/marginalia/internal/core/styles"
)

const quoteWidth = 60

// Source is the attributed text a report is built from.
type Source interface {
	Text() string
	Len() int
	RuneAt(offset int) (rune, richtext.Attrs, bool)
}

// Rating is a run of text sharing one rating background.
type Rating struct {
	Index  int
	Length int
	Color  string
	// Value is the lowest slider value producing Color, or -1 when Color is
	// not part of the palette.
	Value int
}

// Input is everything a report covers.
type Input struct {
	Title   string
	Text    string
	Records []annotation.Record
	Ratings []Rating
}

// Collect gathers the comments and rating runs of src.
func Collect(title string, src Source, records []annotation.Record, p annotation.Palette) Input {
	return Input{
		Title:   title,
		Text:    src.Text(),
		Records: records,
		Ratings: Ratings(src, p),
	}
}

// Ratings returns the maximal runs of src whose background is set, in
// document order.
func Ratings(src Source, p annotation.Palette) []Rating {
	var (
		out []Rating
		cur *Rating
	)

	for i := 0; i < src.Len(); i++ {
		_, attrs, _ := src.RuneAt(i)
		bg := attrs.Background

		if cur != nil && bg == cur.Color {
			cur.Length++
			continue
		}
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
		if bg != "" {
			cur = &Rating{Index: i, Length: 1, Color: bg, Value: valueOf(p, bg)}
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

func valueOf(p annotation.Palette, color string) int {
	if len(p) < 2 {
		return -1
	}
	for i, c := range p {
		if strings.EqualFold(c, color) {
			return (i*annotation.MaxRating + len(p) - 2) / (len(p) - 1)
		}
	}
	return -1
}

// Markdown formats in as a markdown document. It returns an empty string when
// there is nothing to report.
//
// Format:
//
//	# <title>
//
//	Comments: <count>
//	Ratings: <count>
//
//	## Comments
//
//	### Offsets <start>-<end>
//	> <quoted text>
//
//	<comment>
//
//	## Ratings
//
//	- Offsets <start>-<end>: <value> (`<color>`) "<quoted text>"
func Markdown(in Input) string {
	if len(in.Records) == 0 && len(in.Ratings) == 0 {
		return ""
	}

	text := []rune(in.Text)

	var b strings.Builder
	title := in.Title
	if title == "" {
		title = "untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Comments: %d\n", len(in.Records))
	fmt.Fprintf(&b, "Ratings: %d\n", len(in.Ratings))

	if len(in.Records) > 0 {
		records := append([]annotation.Record(nil), in.Records...)
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Anchor < records[j].Anchor
		})

		b.WriteString("\n## Comments\n")
		for _, rec := range records {
			fmt.Fprintf(&b, "\n### Offsets %d-%d\n", rec.Anchor, rec.End())
			for line := range strings.SplitSeq(slice(text, rec.Anchor, rec.Length), "\n") {
				fmt.Fprintf(&b, "> %s\n", line)
			}
			// The body is an indented code block so markdown in it stays literal.
			b.WriteString("\n")
			for line := range strings.SplitSeq(rec.Text, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}

	if len(in.Ratings) > 0 {
		b.WriteString("\n## Ratings\n\n")
		for _, r := range in.Ratings {
			value := "custom"
			if r.Value >= 0 {
				value = fmt.Sprintf("%d", r.Value)
			}
			quote := strings.ReplaceAll(slice(text, r.Index, r.Length), "\n", " ")
			fmt.Fprintf(&b, "- Offsets %d-%d: %s (`%s`) %q\n",
				r.Index, r.Index+r.Length, value, r.Color, ansi.Truncate(quote, quoteWidth, "…"))
		}
	}

	return b.String()
}

func slice(text []rune, index, length int) string {
	start := min(max(index, 0), len(text))
	end := min(max(index+length, start), len(text))
	return string(text[start:end])
}

// Render formats md for a terminal of the given width using the active theme.
func Render(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

// Write prints md to f. Terminals get styled output wrapped to their width;
// pipes and files get the markdown unchanged.
func Write(f *os.File, md string) error {
	if md == "" {
		return nil
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		_, err := io.WriteString(f, md)
		return err
	}

	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	out, err := Render(md, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, out)
	return err
}
