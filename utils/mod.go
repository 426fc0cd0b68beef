package utils

import "golang.org/x/exp/constraints"

// Mod returns a modulo m in [0, m), also for negative a.
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
