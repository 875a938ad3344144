package xychart

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
)

const DefaultColor = "red"

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ParsePalette resolves a palette by name: category10, tableau10 or
// brewer:<name> for the ColorBrewer palettes (brewer:Set1, brewer:Dark2...).
func ParsePalette(name string) (Palette, error) {
	switch lower := strings.ToLower(name); {
	case lower == "" || lower == "category10":
		return Category10, nil
	case lower == "tableau10":
		return Tableau10, nil
	case strings.HasPrefix(lower, "brewer:"):
		return BrewerPalette(name[len("brewer:"):])
	default:
		return nil, fmt.Errorf("%s: unknown palette", name)
	}
}

// BrewerPalette returns the largest variant of a ColorBrewer palette.
func BrewerPalette(name string) (Palette, error) {
	variants, ok := brewer.ByName[name]
	if !ok {
		return nil, fmt.Errorf("%s: unknown brewer palette", name)
	}
	sizes := slices.Sorted(maps.Keys(variants))
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s: empty brewer palette", name)
	}
	var pal Palette
	for _, c := range variants[sizes[len(sizes)-1]] {
		pal = append(pal, HexColor(c))
	}
	return pal, nil
}

func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
