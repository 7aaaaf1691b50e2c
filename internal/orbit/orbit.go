package orbit

import (
	"errors"
	"math/bits"
)

var (
	// ErrInvalidModulus indicates a modulus below 2.
	ErrInvalidModulus = errors.New("orbit: modulus must be at least 2")

	// ErrInvalidMultiplier indicates a negative multiplier.
	ErrInvalidMultiplier = errors.New("orbit: multiplier must be non-negative")
)

// Orbit is the sequence of residues visited from its first element.
type Orbit []int

func (o Orbit) Start() int {
	return o[0]
}

// Closed returns the orbit with its first residue appended.
func (o Orbit) Closed() []int {
	c := make([]int, len(o)+1)
	copy(c, o)
	c[len(o)] = o[0]
	return c
}

func (o Orbit) Contains(r int) bool {
	for _, v := range o {
		if v == r {
			return true
		}
	}
	return false
}

// Enumerate returns the orbits of 1..modulus-1 under multiplication by
// multiplier, ordered by starting residue.
func Enumerate(multiplier, modulus int) ([]Orbit, error) {
	if modulus < 2 {
		return nil, ErrInvalidModulus
	}
	if multiplier < 0 {
		return nil, ErrInvalidMultiplier
	}

	visited := make([]bool, modulus)
	orbits := make([]Orbit, 0)

	for x := 1; x < modulus; x++ {
		if visited[x] {
			continue
		}

		o := Orbit{x}
		inOrbit := map[int]struct{}{x: {}}
		for {
			next := Step(o[len(o)-1], multiplier, modulus)
			if _, ok := inOrbit[next]; ok {
				break
			}
			inOrbit[next] = struct{}{}
			o = append(o, next)
		}

		for _, r := range o {
			visited[r] = true
		}
		orbits = append(orbits, o)
	}

	return orbits, nil
}

// Step returns residue*multiplier mod modulus without overflowing.
func Step(residue, multiplier, modulus int) int {
	hi, lo := bits.Mul64(uint64(residue), uint64(multiplier))
	return int(bits.Rem64(hi, lo, uint64(modulus)))
}

// Count returns the total number of residues across orbits.
func Count(orbits []Orbit) int {
	n := 0
	for _, o := range orbits {
		n += len(o)
	}
	return n
}
