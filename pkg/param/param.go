// Package param implements scalar-or-sequence parameters and the
// broadcasting rules that expand them into per-index values.
//
// A generator call mixes [Scalar] and [Seq] parameters. The replication
// count is the longest sequence ([Count]); scalars and one-element sequences
// apply to every index, longer sequences are read by position ([Param.Resolve]).
// Only the suffix role wraps around ([Param.ResolveCyclic]).
//
//	colors := param.Seq[color.Color]("red", "green")
//	widths := param.Scalar(1.5)
//	n := param.Count(colors, widths) // 2
//	c, _ := colors.Resolve(1, n)     // "green"
//	w, _ := widths.Resolve(1, n)     // 1.5
package param

import (
	"fmt"

	"github.com/matzehuels/plotstyles/pkg/errors"
)

// Param is either a single scalar value or an ordered sequence of per-index
// values. The zero Param is unset; generators replace it with their default.
type Param[T any] struct {
	values []T
	seq    bool
}

// Scalar returns a parameter that applies v to every index.
func Scalar[T any](v T) Param[T] {
	return Param[T]{values: []T{v}}
}

// Seq returns a parameter holding one value per index.
func Seq[T any](vs ...T) Param[T] {
	return Param[T]{values: append([]T(nil), vs...), seq: true}
}

// IsZero reports whether p was never set.
func (p Param[T]) IsZero() bool { return !p.seq && len(p.values) == 0 }

// IsSeq reports whether p is a sequence.
func (p Param[T]) IsSeq() bool { return p.seq }

// Len returns the sequence length, or 0 for scalars and unset parameters.
func (p Param[T]) Len() int {
	if !p.seq {
		return 0
	}
	return len(p.values)
}

// Values returns a copy of the underlying values.
func (p Param[T]) Values() []T { return append([]T(nil), p.values...) }

// Or returns p, or def when p is unset.
func (p Param[T]) Or(def Param[T]) Param[T] {
	if p.IsZero() {
		return def
	}
	return p
}

// Check verifies that p can be resolved for every index below n.
func (p Param[T]) Check(name string, n int) error {
	if p.IsZero() {
		return errors.New(errors.ErrCodeInvalidInput, "%s is not set", name)
	}
	if !p.seq {
		return nil
	}
	if l := len(p.values); l != 1 && l != n {
		return errors.New(errors.ErrCodeLengthMismatch, "%s has %d values, want 1 or %d", name, l, n)
	}
	return nil
}

// CheckCyclic verifies that p can be resolved cyclically.
func (p Param[T]) CheckCyclic(name string) error {
	if len(p.values) == 0 {
		return errors.New(errors.ErrCodeLengthMismatch, "%s has no values", name)
	}
	return nil
}

// Resolve returns the value of p at index k for replication count n.
func (p Param[T]) Resolve(k, n int) (T, error) {
	var zero T
	if k < 0 || k >= n {
		return zero, errors.New(errors.ErrCodeInvalidInput, "index %d out of range [0,%d)", k, n)
	}
	switch {
	case len(p.values) == 0:
		return zero, errors.New(errors.ErrCodeLengthMismatch, "parameter has no values")
	case !p.seq || len(p.values) == 1:
		return p.values[0], nil
	case len(p.values) == n:
		return p.values[k], nil
	default:
		return zero, errors.New(errors.ErrCodeLengthMismatch, "parameter has %d values, want 1 or %d", len(p.values), n)
	}
}

// ResolveCyclic returns the value at k modulo the sequence length.
func (p Param[T]) ResolveCyclic(k int) (T, error) {
	var zero T
	if len(p.values) == 0 {
		return zero, errors.New(errors.ErrCodeLengthMismatch, "parameter has no values")
	}
	if k < 0 {
		return zero, errors.New(errors.ErrCodeInvalidInput, "negative index %d", k)
	}
	return p.values[k%len(p.values)], nil
}

// MustResolve is like Resolve but panics on error. Use it only after Check.
func (p Param[T]) MustResolve(k, n int) T {
	v, err := p.Resolve(k, n)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats p as a value or a bracketed list.
func (p Param[T]) String() string {
	switch {
	case p.IsZero():
		return "<unset>"
	case p.seq:
		return fmt.Sprint(p.values)
	default:
		return fmt.Sprint(p.values[0])
	}
}

// Lengther is implemented by every Param.
type Lengther interface {
	Len() int
}

// Count returns the replication count: the longest sequence among ps, or 1
// when no parameter is a sequence.
func Count(ps ...Lengther) int {
	n := 1
	for _, p := range ps {
		n = max(n, p.Len())
	}
	return n
}
