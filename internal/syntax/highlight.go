package syntax

// Color is a 16-colour terminal foreground.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorDarkRed
	ColorDarkGreen
	ColorDarkYellow
	ColorDarkBlue
	ColorDarkMagenta
	ColorDarkCyan
	ColorGrey
	ColorDarkGrey
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// SGR returns the Select Graphic Rendition parameter that sets c as the
// foreground colour.
func (c Color) SGR() int {
	switch c {
	case ColorBlack:
		return 30
	case ColorDarkRed:
		return 31
	case ColorDarkGreen:
		return 32
	case ColorDarkYellow:
		return 33
	case ColorDarkBlue:
		return 34
	case ColorDarkMagenta:
		return 35
	case ColorDarkCyan:
		return 36
	case ColorGrey:
		return 37
	case ColorDarkGrey:
		return 90
	case ColorRed:
		return 91
	case ColorGreen:
		return 92
	case ColorYellow:
		return 93
	case ColorBlue:
		return 94
	case ColorMagenta:
		return 95
	case ColorCyan:
		return 96
	case ColorWhite:
		return 97
	}
	return 39
}

// Kind classifies one render character.
type Kind int

const (
	Normal Kind = iota
	Number
	String
	CharLiteral
	Comment
	MultilineComment
	SearchMatch
	Selection
	Other // keyword; colour carried in Highlight.Color
)

// Highlight is the classification tag of a single render character.
type Highlight struct {
	Kind  Kind
	Color Color // only meaningful for Other
}

var (
	HLNormal           = Highlight{Kind: Normal}
	HLNumber           = Highlight{Kind: Number}
	HLString           = Highlight{Kind: String}
	HLCharLiteral      = Highlight{Kind: CharLiteral}
	HLComment          = Highlight{Kind: Comment}
	HLMultilineComment = Highlight{Kind: MultilineComment}
	HLSearchMatch      = Highlight{Kind: SearchMatch}
	HLSelection        = Highlight{Kind: Selection}
)

// Keyword returns the tag for a keyword drawn in c.
func Keyword(c Color) Highlight {
	return Highlight{Kind: Other, Color: c}
}

// Foreground maps a tag to the colour it is drawn in.
func (h Highlight) Foreground() Color {
	switch h.Kind {
	case Number:
		return ColorCyan
	case String:
		return ColorGreen
	case CharLiteral:
		return ColorDarkGreen
	case Comment, MultilineComment:
		return ColorDarkGrey
	case SearchMatch:
		return ColorBlue
	case Selection:
		return ColorWhite
	case Other:
		return h.Color
	}
	return ColorDefault
}
