package vtcore

// RGB is a plain 24-bit color triple, independent of any rendering package.
type RGB struct {
	R, G, B uint8
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// a 216 color cube (16-231), and 24 grayscale shades (232-255).
var DefaultPalette = [256]RGB{
	// Standard colors (0-7)
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},

	// Bright colors (8-15)
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},

	// 216 colors (16-231) and 24 grayscale (232-255) generated in init.
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = RGB{gray, gray, gray}
	}
}

// DefaultForeground is the default text color.
var DefaultForeground = RGB{229, 229, 229}

// DefaultBackground is the default background color.
var DefaultBackground = RGB{0, 0, 0}

// DefaultCursorColor is the default cursor rendering color.
var DefaultCursorColor = RGB{229, 229, 229}

// ColorPalette holds the 256-entry indexed palette plus the three
// special slots xterm exposes via OSC 4/10/11/12, mutable at runtime.
type ColorPalette struct {
	entries    [256]RGB
	foreground RGB
	background RGB
	cursor     RGB
}

// NewColorPalette returns a palette initialized to the defaults.
func NewColorPalette() *ColorPalette {
	return &ColorPalette{
		entries:    DefaultPalette,
		foreground: DefaultForeground,
		background: DefaultBackground,
		cursor:     DefaultCursorColor,
	}
}

// SetIndexed sets palette entry i (OSC 4).
func (p *ColorPalette) SetIndexed(i int, c RGB) {
	if i >= 0 && i < 256 {
		p.entries[i] = c
	}
}

// ResetIndexed restores palette entry i to its default (CSI/OSC 104).
func (p *ColorPalette) ResetIndexed(i int) {
	if i >= 0 && i < 256 {
		p.entries[i] = DefaultPalette[i]
	}
}

// SetForeground sets the default foreground color (OSC 10).
func (p *ColorPalette) SetForeground(c RGB) { p.foreground = c }

// SetBackground sets the default background color (OSC 11).
func (p *ColorPalette) SetBackground(c RGB) { p.background = c }

// SetCursor sets the cursor color (OSC 12).
func (p *ColorPalette) SetCursor(c RGB) { p.cursor = c }

// ResetAll restores every slot (DECSTR / soft reset).
func (p *ColorPalette) ResetAll() {
	p.entries = DefaultPalette
	p.foreground = DefaultForeground
	p.background = DefaultBackground
	p.cursor = DefaultCursorColor
}

// Resolve converts a Color value to a concrete RGB using this palette.
// fg selects which special default to fall back to for ColorDefault.
func (p *ColorPalette) Resolve(c Color, fg bool) RGB {
	switch c.Mode {
	case ColorIndexed:
		return p.entries[c.Index]
	case ColorRGB:
		return RGB{c.R, c.G, c.B}
	default:
		if fg {
			return p.foreground
		}
		return p.background
	}
}
