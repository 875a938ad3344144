package svgout

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

var DefaultSize float64 = 4

// Marker draws the symbol of a point centered on (x, y).
type Marker func(canvas *svg.SVG, x, y, size float64, style string)

func Circle(canvas *svg.SVG, x, y, size float64, style string) {
	d := fmt.Sprintf("M%s,%sa%s,%s 0 1,0 %s,0a%s,%s 0 1,0 %s,0",
		num(x-size), num(y), num(size), num(size), num(size*2), num(size), num(size), num(-size*2))
	canvas.Path(d, style)
}

func Square(canvas *svg.SVG, x, y, size float64, style string) {
	d := fmt.Sprintf("M%s,%sh%sv%sh%sZ", num(x-size), num(y-size), num(size*2), num(size*2), num(-size*2))
	canvas.Path(d, style)
}

func Diamond(canvas *svg.SVG, x, y, size float64, style string) {
	d := fmt.Sprintf("M%s,%sL%s,%sL%s,%sL%s,%sZ",
		num(x), num(y-size), num(x+size), num(y), num(x), num(y+size), num(x-size), num(y))
	canvas.Path(d, style)
}

func ParseMarker(name string) (Marker, error) {
	switch name {
	case "", "circle":
		return Circle, nil
	case "square":
		return Square, nil
	case "diamond":
		return Diamond, nil
	default:
		return nil, fmt.Errorf("%s: unknown marker", name)
	}
}
