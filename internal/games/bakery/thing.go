// Package bakery implements the falling-ingredient mixing puzzle:
// ingredients occupy cells of a sparse grid, fall under gravity,
// combine into buns according to mixing rules, spawn at the top row
// and are collected at the bottom row. The simulation is pure and
// deterministic; all randomness is threaded through an explicit seed.
package bakery

import (
	"fmt"
	"strings"
)

// Flavour is one of the three flavourings an ingredient can carry.
type Flavour uint8

const (
	FlavourSugar Flavour = iota
	FlavourChocolate
	FlavourChilli
)

// String returns the lowercase flavour name.
func (f Flavour) String() string {
	switch f {
	case FlavourSugar:
		return "sugar"
	case FlavourChocolate:
		return "chocolate"
	case FlavourChilli:
		return "chilli"
	default:
		return "unknown"
	}
}

// ParseFlavour parses a flavour name, case-insensitive.
func ParseFlavour(s string) (Flavour, bool) {
	switch strings.ToLower(s) {
	case "sugar":
		return FlavourSugar, true
	case "chocolate", "choc":
		return FlavourChocolate, true
	case "chilli", "chili":
		return FlavourChilli, true
	default:
		return FlavourSugar, false
	}
}

// ThingKind tags the variant of a Thing.
type ThingKind uint8

const (
	KindBun ThingKind = iota
	KindFlour
	KindWater
	KindFlavouring
	KindObstacle
)

// String returns the lowercase kind name.
func (k ThingKind) String() string {
	switch k {
	case KindBun:
		return "bun"
	case KindFlour:
		return "flour"
	case KindWater:
		return "water"
	case KindFlavouring:
		return "flavouring"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Thing is a dynamic occupant of a grid cell: a tagged variant over
// Bun/Flour/Water (each with an optional flavour), Flavouring (always
// flavoured) and Obstacle (inert, never falls, never mixes).
// The zero value is an unflavoured bun; Flavour is only meaningful
// when Flavoured is true.
type Thing struct {
	Kind      ThingKind
	Flavour   Flavour
	Flavoured bool
}

// Bun returns an unflavoured bun.
func Bun() Thing {
	return Thing{Kind: KindBun}
}

// BunOf returns a bun with the given flavour.
func BunOf(f Flavour) Thing {
	return Thing{Kind: KindBun, Flavour: f, Flavoured: true}
}

// Flour returns unflavoured flour.
func Flour() Thing {
	return Thing{Kind: KindFlour}
}

// FlourOf returns flour with the given flavour.
func FlourOf(f Flavour) Thing {
	return Thing{Kind: KindFlour, Flavour: f, Flavoured: true}
}

// Water returns unflavoured water.
func Water() Thing {
	return Thing{Kind: KindWater}
}

// WaterOf returns water with the given flavour.
func WaterOf(f Flavour) Thing {
	return Thing{Kind: KindWater, Flavour: f, Flavoured: true}
}

// FlavouringOf returns a flavouring; flavourings always carry a flavour.
func FlavouringOf(f Flavour) Thing {
	return Thing{Kind: KindFlavouring, Flavour: f, Flavoured: true}
}

// Obstacle returns an inert obstacle.
func Obstacle() Thing {
	return Thing{Kind: KindObstacle}
}

// String returns a parseable representation, e.g. "water",
// "flour:sugar", "flavouring:chilli".
func (t Thing) String() string {
	if t.Flavoured {
		return t.Kind.String() + ":" + t.Flavour.String()
	}
	return t.Kind.String()
}

// ParseThing parses the representation produced by String. The
// flavour part is optional except for flavourings, which require one.
func ParseThing(s string) (Thing, error) {
	kindPart, flavourPart, hasFlavour := strings.Cut(strings.TrimSpace(s), ":")

	var t Thing
	switch strings.ToLower(kindPart) {
	case "bun":
		t.Kind = KindBun
	case "flour":
		t.Kind = KindFlour
	case "water":
		t.Kind = KindWater
	case "flavouring":
		t.Kind = KindFlavouring
	case "obstacle":
		t.Kind = KindObstacle
	default:
		return Thing{}, fmt.Errorf("bakery: unknown thing %q", s)
	}

	if hasFlavour {
		f, ok := ParseFlavour(flavourPart)
		if !ok {
			return Thing{}, fmt.Errorf("bakery: unknown flavour %q in %q", flavourPart, s)
		}
		if t.Kind == KindObstacle {
			return Thing{}, fmt.Errorf("bakery: obstacles cannot be flavoured: %q", s)
		}
		t.Flavour = f
		t.Flavoured = true
	}
	if t.Kind == KindFlavouring && !t.Flavoured {
		return Thing{}, fmt.Errorf("bakery: flavouring needs a flavour: %q", s)
	}
	return t, nil
}

// Mix combines two colliding things. It is symmetric in its
// arguments. The second result is false when the pair does not react;
// callers leave the grid unchanged in that case.
func Mix(a, b Thing) (Thing, bool) {
	if out, ok := mixOrdered(a, b); ok {
		return out, true
	}
	return mixOrdered(b, a)
}

// mixOrdered applies the reaction table in one argument order.
func mixOrdered(a, b Thing) (Thing, bool) {
	switch {
	case a.Kind == KindWater && b.Kind == KindFlour:
		return mixBun(b, a)
	case a.Kind == KindWater && !a.Flavoured && b.Kind == KindFlavouring:
		return WaterOf(b.Flavour), true
	case a.Kind == KindFlour && !a.Flavoured && b.Kind == KindFlavouring:
		return FlourOf(b.Flavour), true
	default:
		return Thing{}, false
	}
}

// mixBun combines flour and water into a bun. Both unflavoured makes
// a plain bun, exactly one flavour carries over, equal flavours keep
// the flavour, and differing flavours do not combine.
func mixBun(flour, water Thing) (Thing, bool) {
	switch {
	case !flour.Flavoured && !water.Flavoured:
		return Bun(), true
	case flour.Flavoured && !water.Flavoured:
		return BunOf(flour.Flavour), true
	case !flour.Flavoured && water.Flavoured:
		return BunOf(water.Flavour), true
	case flour.Flavour == water.Flavour:
		return BunOf(flour.Flavour), true
	default:
		return Thing{}, false
	}
}
