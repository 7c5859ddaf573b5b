// Package richtext implements an attributed plain-text document: runes with
// per-rune character attributes, a caret/anchor selection, snapshot history
// and cell geometry for terminal rendering.
//
// Offsets are 0-based rune indices over the whole text, with '\n' counting as
// one offset. Ranges are half-open: [Index, Index+Length).
// Positions (Row, Col) are 0-based; Col is measured in display cells.
package richtext
