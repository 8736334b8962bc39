package lamination

import "math/big"

// ComponentKind classifies a single decomposed component of a
// Lamination as an arc or a closed curve.
type ComponentKind int

const (
	// KindArc marks a component terminating at (at least) one puncture.
	KindArc ComponentKind = iota
	// KindCurve marks a closed-curve component (peripheral loops around
	// a puncture are reported with this kind too).
	KindCurve
)

// Component is one piece of a Lamination's decomposition: a primitive
// (multiplicity-one) Lamination on the same triangulation as the
// lamination it was decomposed from, tagged with its kind.
type Component struct {
	Lamination *Lamination
	Kind       ComponentKind
}

// ComponentMultiplicity pairs a Component with how many disjoint
// parallel copies of it appear. Represented as a slice entry rather
// than a Go map (spec's "{component: multiplicity}") because Component
// embeds a *Lamination, which is not a comparable map key.
type ComponentMultiplicity struct {
	Component    Component
	Multiplicity *big.Int
}

func unitArc(l *Lamination, idx int, multiplicity *big.Int) *Lamination {
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	out[idx] = new(big.Int).Neg(multiplicity)

	return withWeights(l.tri, out)
}

func unitCurve(l *Lamination, idx int) *Lamination {
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	out[idx] = big.NewInt(2)

	return withWeights(l.tri, out)
}

// Components decomposes l into its disjoint pieces: first shortening l
// (via the registered Shortener), then reading off the short form's
// peripheral loops and edge-parallel pieces, and finally mapping every
// piece back across the shortening reduction's inverse so the result is
// expressed on l's own triangulation.
//
// The peripheral part, when non-empty, is reported as a single curve
// component of multiplicity 1 (it may itself bundle several loops
// around distinct punctures; no operation this module implements
// requires splitting it further). Edge-parallel
// arcs (negative short-form entries) decompose exactly, one component
// per edge index. Edge-parallel curves (positive short-form entries)
// are reported one component per edge index with the edge's entry
// divided by two as the multiplicity in the common non-corridor case;
// a corridor (several edges at weight 2 meeting a single weight-4
// triangle) is reported as one multiplicity-1 curve component per
// contributing edge.
func (l *Lamination) Components() []ComponentMultiplicity {
	short, reduce := l.shorten()
	var out []ComponentMultiplicity

	if peripheral := short.Peripheral(); !peripheral.IsEmpty() {
		mapped, err := reduce.ApplyInverse(peripheral)
		if err != nil {
			panic(err)
		}
		out = append(out, ComponentMultiplicity{
			Component:    Component{Lamination: mapped, Kind: KindCurve},
			Multiplicity: big.NewInt(1),
		})
	}

	for i := 0; i < short.Zeta(); i++ {
		v := short.At(i)
		switch {
		case v.Sign() < 0:
			mult := new(big.Int).Neg(v)
			mapped, err := reduce.ApplyInverse(unitArc(short, i, mult))
			if err != nil {
				panic(err)
			}
			out = append(out, ComponentMultiplicity{
				Component:    Component{Lamination: mapped, Kind: KindArc},
				Multiplicity: mult,
			})
		case v.Sign() > 0:
			mult := new(big.Int).Set(v)
			half := new(big.Int).Rsh(mult, 1)
			if half.Sign() == 0 {
				half = big.NewInt(1)
			}
			mapped, err := reduce.ApplyInverse(unitCurve(short, i))
			if err != nil {
				panic(err)
			}
			out = append(out, ComponentMultiplicity{
				Component:    Component{Lamination: mapped, Kind: KindCurve},
				Multiplicity: half,
			})
		}
	}

	return out
}

// MComponents flattens Components into a multiset, each component
// repeated Multiplicity times (multiplicity is truncated to int64 for
// the repeat count; the module never decomposes laminations whose
// per-component multiplicity exceeds that range).
func (l *Lamination) MComponents() []Component {
	var out []Component
	for _, cm := range l.Components() {
		n := cm.Multiplicity.Int64()
		for k := int64(0); k < n; k++ {
			out = append(out, cm.Component)
		}
	}

	return out
}

// IsMultiArc reports whether every non-peripheral component of l is an
// arc.
func (l *Lamination) IsMultiArc() bool {
	for _, cm := range l.Components() {
		if cm.Component.Kind == KindCurve && !cm.Component.Lamination.IsPeripheral() {
			return false
		}
	}

	return true
}

// IsMultiCurve reports whether l has no arc components.
func (l *Lamination) IsMultiCurve() bool {
	for _, cm := range l.Components() {
		if cm.Component.Kind == KindArc {
			return false
		}
	}

	return true
}

// nonPeripheralComponentCount counts components that are not pure
// peripheral loops, used by IsArc/IsCurve to require "exactly one
// component" in the non-trivial, non-peripheral sense.
func (l *Lamination) nonPeripheralComponentCount() (count int64, last ComponentMultiplicity) {
	for _, cm := range l.Components() {
		if cm.Component.Kind == KindCurve && cm.Component.Lamination.IsPeripheral() {
			continue
		}
		count += cm.Multiplicity.Int64()
		last = cm
	}

	return count, last
}

// IsArc reports whether l is a MultiArc with exactly one component.
func (l *Lamination) IsArc() bool {
	if !l.IsMultiArc() {
		return false
	}
	count, _ := l.nonPeripheralComponentCount()

	return count == 1
}

// IsCurve reports whether l is a MultiCurve with exactly one non-
// peripheral component.
func (l *Lamination) IsCurve() bool {
	if !l.IsMultiCurve() {
		return false
	}
	count, _ := l.nonPeripheralComponentCount()

	return count == 1
}
