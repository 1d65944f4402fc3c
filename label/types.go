package label

import "errors"

// ErrBadConnectivity indicates a Connectivity outside {Conn4, Conn8}.
var ErrBadConnectivity = errors.New("label: connectivity must be Conn4 or Conn8")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offsets for the connectivity as (dx, dy)
// pairs, or ErrBadConnectivity for any other value.
func (c Connectivity) offsets() ([][2]int, error) {
	switch c {
	case Conn4:
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, nil
	case Conn8:
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}, nil
	default:
		return nil, ErrBadConnectivity
	}
}
