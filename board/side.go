package board

import "fmt"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func NewSideFromSymbol(sym string) (Side, error) {
	switch sym {
	case "w":
		return SideWhite, nil
	case "b":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("unknown side symbol '%s'", sym)
	}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// Symbol returns the FEN active color field for the side.
func (s Side) Symbol() string {
	switch s {
	case SideWhite:
		return "w"
	case SideBlack:
		return "b"
	default:
		return "-"
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}
