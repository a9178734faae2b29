package ds

import (
	"golang.org/x/exp/constraints"
)

// CeilDiv divides n by m rounding up. It panics when m is not positive.
func CeilDiv[T constraints.Integer](n, m T) T {
	if m <= 0 {
		panic(ErrUnreachableCode{Caller: "CeilDiv"})
	}
	return (n + m - 1) / m
}
