package richtext

// Format returns the attributes shared by every rune in r. Newlines carry no
// formatting and are skipped. For a collapsed range the attributes of the rune
// before r.Index are returned.
func (d *Document) Format(r Range) Attrs {
	r = d.clampRange(r)
	if r.IsEmpty() {
		if r.Index > 0 {
			return d.attrs[r.Index-1]
		}
		return Attrs{}
	}

	var (
		out   Attrs
		first = true
	)
	for i := r.Index; i < r.End(); i++ {
		if d.text[i] == '\n' {
			continue
		}
		a := d.attrs[i]
		if first {
			out = a
			first = false
			continue
		}
		out.Bold = out.Bold && a.Bold
		out.Underline = out.Underline && a.Underline
		if out.Background != a.Background {
			out.Background = ""
		}
	}
	return out
}

// SetBold sets or clears bold over r.
func (d *Document) SetBold(r Range, on bool) {
	d.apply(r, func(a *Attrs) { a.Bold = on })
}

// SetBackground sets the background color over r. An empty color clears it.
func (d *Document) SetBackground(r Range, color string) {
	d.apply(r, func(a *Attrs) { a.Background = color })
}

// SetUnderline sets or clears underline over r.
func (d *Document) SetUnderline(r Range, on bool) {
	d.apply(r, func(a *Attrs) { a.Underline = on })
}

// apply runs fn over each non-newline rune in r and records history when
// anything changed.
func (d *Document) apply(r Range, fn func(*Attrs)) {
	r = d.clampRange(r)
	if r.IsEmpty() {
		return
	}

	prev := d.snapshot()
	changed := false
	for i := r.Index; i < r.End(); i++ {
		if d.text[i] == '\n' {
			continue
		}
		before := d.attrs[i]
		fn(&d.attrs[i])
		if d.attrs[i] != before {
			changed = true
		}
	}

	if changed {
		d.recordUndo(prev)
	}
}
