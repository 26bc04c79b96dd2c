package domain

import "errors"

// ErrInvalidInput reports a model parameter outside its documented
// domain. Validation raises it eagerly; values are never clamped.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoConvergence reports that the retirement search exhausted its
// maximum year bound without accumulated wealth reaching the target.
var ErrNoConvergence = errors.New("no convergence")
