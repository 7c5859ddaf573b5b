package printer

import (
	"bytes"
	"io"
)

// Held is a printer whose lines are kept in memory until Release. Commands
// use it while a full-screen program owns the terminal.
type Held struct {
	*Printer
	buf bytes.Buffer
	out io.Writer
}

// Hold creates a held printer that releases to out.
func Hold(out io.Writer) *Held {
	h := &Held{out: out}
	h.Printer = New(&h.buf)
	return h
}

// Release writes the held lines to the destination and clears them.
func (h *Held) Release() error {
	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(h.out)
	return err
}
