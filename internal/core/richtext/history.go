package richtext

type snapshot struct {
	text   []rune
	attrs  []Attrs
	cursor int
	anchor int
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (d *Document) snapshot() snapshot {
	return snapshot{
		text:   append([]rune(nil), d.text...),
		attrs:  append([]Attrs(nil), d.attrs...),
		cursor: d.cursor,
		anchor: d.anchor,
	}
}

func (d *Document) restore(s snapshot) {
	textChanged := string(s.text) != string(d.text)

	d.text = s.text
	d.attrs = s.attrs
	d.cursor = clampInt(s.cursor, 0, len(d.text))
	d.anchor = clampInt(s.anchor, 0, len(d.text))
	d.goalCol = -1

	if textChanged {
		d.commit()
	}
}

func (d *Document) recordUndo(prev snapshot) {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	d.hist.undo = append(d.hist.undo, prev)
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

// CanUndo reports whether Undo would do anything.
func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo reverts the last text or format change.
func (d *Document) Undo() bool {
	if len(d.hist.undo) == 0 {
		return false
	}

	cur := d.snapshot()
	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, cur)

	d.restore(prev)
	return true
}

// Redo re-applies the last undone change.
func (d *Document) Redo() bool {
	if len(d.hist.redo) == 0 {
		return false
	}

	cur := d.snapshot()
	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]

	if limit := d.opt.HistoryLimit; limit > 0 {
		d.hist.undo = append(d.hist.undo, cur)
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}

	d.restore(next)
	return true
}
