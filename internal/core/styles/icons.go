package styles

// Toolbar and header glyphs. Plain unicode so no patched font is required.
var (
	IconBold    = "B"
	IconRate    = "★"
	IconComment = "✎"
	IconUndo    = "↶"
	IconRedo    = "↷"
)
