package format

import "strconv"

// Attributes lists the attribute names accepted by -a, in display order.
var Attributes = []string{"reset", "bright", "dim", "underline", "blink", "reverse", "hidden"}

// Colors lists the color names accepted by -f and -b, in palette order.
var Colors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var attributeCodes = []int{0, 1, 2, 3, 4, 7, 8}

const (
	foregroundBase = 30
	backgroundBase = 40

	// DefaultForeground and DefaultBackground are the palette indices used
	// when no attribute or color was selected (white on red).
	DefaultForeground = 7
	DefaultBackground = 1
)

// LookupAttribute returns the index of an attribute name.
func LookupAttribute(name string) (int, bool) {
	return indexOf(Attributes, name)
}

// LookupColor returns the palette index of a color name.
func LookupColor(name string) (int, bool) {
	return indexOf(Colors, name)
}

func indexOf(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func attributeCode(i int) string {
	return strconv.Itoa(attributeCodes[i])
}

func foregroundCode(i int) string {
	return strconv.Itoa(foregroundBase + i)
}

func backgroundCode(i int) string {
	return strconv.Itoa(backgroundBase + i)
}
