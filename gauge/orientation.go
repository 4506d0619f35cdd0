package gauge

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// Toggled returns the other orientation.
func (o Orientation) Toggled() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, errors.Errorf("unknown orientation %q", s)
}
