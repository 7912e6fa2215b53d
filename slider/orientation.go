package slider

// Orientation is the direction a slider is drawn in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) IsHorizontal() bool { return o == Horizontal }
func (o Orientation) IsVertical() bool { return o == Vertical }

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Horizontal {
		return Vertical
	}

	return Horizontal
}

// Toggle flips the orientation in place.
func (o *Orientation) Toggle() {
	*o = o.Opposite()
}

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}

	return "Horizontal"
}
