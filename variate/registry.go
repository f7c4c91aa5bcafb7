package variate

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/simul8/matrix"
)

// RegistryOption customizes a Registry at construction time.
type RegistryOption func(*Registry)

// WithStrict makes Register fail with ErrDuplicateVariable on a name
// collision instead of replacing the earlier matrix.
func WithStrict() RegistryOption {
	return func(r *Registry) { r.strict = true }
}

// WithOverwriteHook installs fn, called (outside the lock) whenever a
// non-strict registration replaces an existing variable. prev and next are
// the replaced and the new declaration. Panics on nil.
func WithOverwriteHook(fn func(prev, next Variate)) RegistryOption {
	if fn == nil {
		panic("variate: WithOverwriteHook(nil)")
	}
	return func(r *Registry) { r.onOverwrite = fn }
}

// Registry maps variable names to their variate matrices and the
// declarations that produced them.
//
// Default policy is last-write-wins: registering a name again replaces the
// earlier matrix and keeps its original position in Names(). This lets one
// variable be re-declared under another family, and also lets accidental
// duplicates through; use WithStrict to forbid them.
//
// All matrices must share one shape (sims × periods). The registry is safe
// for concurrent use; matrices handed out are shared and must be treated as
// read-only once a run starts.
type Registry struct {
	mu          sync.RWMutex
	strict      bool
	onOverwrite func(prev, next Variate)
	order       []string
	byName      map[string]Variate
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{byName: make(map[string]Variate)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register stores m under name with no declaration metadata.
func (r *Registry) Register(name string, m *matrix.Dense) error {
	return r.RegisterVariate(Variate{Name: name, Matrix: m})
}

// RegisterVariate stores v under v.Name.
//
// Errors:
//   - ErrEmptyName, ErrNilMatrix;
//   - ErrDuplicateVariable in strict mode;
//   - ErrShapeMismatch when the matrix shape differs from the registered ones.
func (r *Registry) RegisterVariate(v Variate) error {
	name, m := v.Name, v.Matrix
	if name == "" {
		return fmt.Errorf("Register: %w", ErrEmptyName)
	}
	if m == nil {
		return fmt.Errorf("Register(%s): %w", name, ErrNilMatrix)
	}

	r.mu.Lock()
	if _, exists := r.byName[name]; exists && r.strict {
		r.mu.Unlock()
		return fmt.Errorf("Register(%s): %w", name, ErrDuplicateVariable)
	}
	if len(r.order) > 0 {
		ref := r.byName[r.order[0]].Matrix
		if err := matrix.ValidateSameShape(ref, m); err != nil {
			r.mu.Unlock()
			return fmt.Errorf("Register(%s): got %dx%d, want %dx%d: %w",
				name, m.Rows(), m.Cols(), ref.Rows(), ref.Cols(), ErrShapeMismatch)
		}
	}
	prev, replaced := r.byName[name]
	if !replaced {
		r.order = append(r.order, name)
	}
	r.byName[name] = v
	hook := r.onOverwrite
	r.mu.Unlock()

	if replaced && hook != nil {
		hook(prev, v)
	}

	return nil
}

// RegisterAll registers every variate in order, stopping at the first error.
func (r *Registry) RegisterAll(vs []Variate) error {
	for _, v := range vs {
		if err := r.RegisterVariate(v); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the matrix registered under name.
func (r *Registry) Get(name string) (*matrix.Dense, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byName[name]

	return v.Matrix, ok
}

// Lookup returns the full registration under name. Family is zero and
// Params nil for matrices added through Register.
func (r *Registry) Lookup(name string) (Variate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byName[name]

	return v, ok
}

// Names returns the registered names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// All returns a copy of the name → matrix mapping. The matrices themselves
// are shared, not cloned.
func (r *Registry) All() map[string]*matrix.Dense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*matrix.Dense, len(r.byName))
	for k, v := range r.byName {
		out[k] = v.Matrix
	}

	return out
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Shape returns the common (sims, periods) shape, or (0, 0) when empty.
func (r *Registry) Shape() (sims, periods int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return 0, 0
	}
	m := r.byName[r.order[0]].Matrix

	return m.Rows(), m.Cols()
}

// Strict reports whether duplicate names are rejected.
func (r *Registry) Strict() bool { return r.strict }
