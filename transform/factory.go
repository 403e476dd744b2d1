// SPDX-License-Identifier: MIT

package transform

import (
	"sync"

	"github.com/shruda/geodesy/matrix"
)

// Factory creates transforms. The package-level constructors are the
// building blocks; a factory adds policy on top of them (caching,
// canonicalization) and is the seam providers program against.
type Factory interface {
	// CreateAffineTransform builds a linear transform from the matrix.
	CreateAffineTransform(m matrix.Matrix) (Transform, error)

	// CreateConcatenatedTransform chains t1 then t2.
	CreateConcatenatedTransform(t1, t2 Transform) (Transform, error)
}

// Uniquifier is an optional factory capability: canonicalize transforms so
// that equal parameterizations share a single instance. Factories without
// this capability simply return every transform as-is.
type Uniquifier interface {
	// Unique returns the canonical instance equal to t, registering t as
	// canonical when none exists yet.
	Unique(t Transform) Transform
}

// Canonicalizable is implemented by transforms that can participate in
// de-duplication. The key must encode every datum that distinguishes two
// instances behaviorally.
type Canonicalizable interface {
	// CacheKey returns a deterministic identity string.
	CacheKey() string
}

// DefaultFactory is the standard Factory: affine and concatenated
// construction via the package constructors, plus cache-based transform
// de-duplication. The zero value is not usable; call NewFactory.
//
// Safe for concurrent use.
type DefaultFactory struct {
	mu    sync.Mutex
	cache map[string]Transform
}

// NewFactory returns an empty DefaultFactory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{cache: make(map[string]Transform)}
}

// CreateAffineTransform implements Factory.
//
// Errors: ErrFactory wrapping the construction failure.
func (f *DefaultFactory) CreateAffineTransform(m matrix.Matrix) (Transform, error) {
	a, err := NewAffine(m)
	if err != nil {
		return nil, factoryErrorf(opAffine, err)
	}
	return a, nil
}

// CreateConcatenatedTransform implements Factory.
//
// Errors: ErrFactory wrapping the construction failure.
func (f *DefaultFactory) CreateConcatenatedTransform(t1, t2 Transform) (Transform, error) {
	c, err := NewConcatenated(t1, t2)
	if err != nil {
		return nil, factoryErrorf(opConcatenated, err)
	}
	return c, nil
}

// Unique implements Uniquifier. Transforms that do not implement
// Canonicalizable are returned unchanged.
func (f *DefaultFactory) Unique(t Transform) Transform {
	c, ok := t.(Canonicalizable)
	if !ok {
		return t
	}
	key := c.CacheKey()
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.cache[key]; ok {
		return prev
	}
	f.cache[key] = t
	return t
}
