package layout

import "fmt"

// NodeSize is the pixel size of a node rectangle.
type NodeSize struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// PortSize is the pixel size of a port circle.
type PortSize struct {
	Diameter float64 `toml:"diameter" yaml:"diameter" json:"diameter"`
	Border   float64 `toml:"border" yaml:"border" json:"border"`
}

// View holds the pixel constants of a rendering.
type View struct {
	DX   float64  `toml:"dx" yaml:"dx" json:"dx"` // horizontal gap between columns
	DY   float64  `toml:"dy" yaml:"dy" json:"dy"` // vertical gap between rows
	Node NodeSize `toml:"node" yaml:"node" json:"node"`
	Port PortSize `toml:"port" yaml:"port" json:"port"`
}

// DefaultView returns the constants used when none are configured.
func DefaultView() View {
	return View{
		DX:   40,
		DY:   40,
		Node: NodeSize{Width: 160, Height: 40},
		Port: PortSize{Diameter: 8, Border: 1},
	}
}

// Validate reports an error wrapping ErrInvalidView when the constants cannot
// hold a routed graph. Lanes need room between two arcs, so a column gap must
// be wider than one port diameter and a row gap taller than two.
func (v View) Validate() error {
	switch {
	case v.DX <= 0 || v.DY <= 0:
		return fmt.Errorf("%w: gaps must be positive (dx=%g, dy=%g)", ErrInvalidView, v.DX, v.DY)
	case v.Node.Width <= 0 || v.Node.Height <= 0:
		return fmt.Errorf("%w: node size must be positive (%gx%g)", ErrInvalidView, v.Node.Width, v.Node.Height)
	case v.Port.Diameter < 0 || v.Port.Border < 0:
		return fmt.Errorf("%w: port size must not be negative", ErrInvalidView)
	case v.Node.Width <= v.Port.Diameter:
		return fmt.Errorf("%w: node width %g must exceed port diameter %g", ErrInvalidView, v.Node.Width, v.Port.Diameter)
	case v.DX <= v.Port.Diameter:
		return fmt.Errorf("%w: dx %g must exceed port diameter %g", ErrInvalidView, v.DX, v.Port.Diameter)
	case v.DY <= 2*v.Port.Diameter:
		return fmt.Errorf("%w: dy %g must exceed twice the port diameter %g", ErrInvalidView, v.DY, v.Port.Diameter)
	}
	return nil
}

// metrics are the derived quantities shared by every geometry formula.
type metrics struct {
	r      float64 // port radius
	w2     float64 // node width available to ports
	w3, h3 float64 // column and row pitch
	cx, cy float64 // usable width of a column gap, height of a row gap
}

func (v View) metrics() metrics {
	r := v.Port.Diameter / 2
	return metrics{
		r:  r,
		w2: v.Node.Width - 2*r,
		w3: v.Node.Width + v.DX,
		h3: v.Node.Height + v.DY,
		cx: v.DX - 2*r,
		cy: v.DY - 4*r,
	}
}
