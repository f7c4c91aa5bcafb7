package table

import (
	"fmt"

	"github.com/katalvlaran/simul8/matrix"
	"github.com/katalvlaran/simul8/variate"
)

// Assembler produces the iteration table for simulation i: the template,
// transposed, with every registered variable's row replaced by row i of its
// variate matrix.
//
// The registry is snapshotted at construction; later registrations are not
// observed. An Assembler is safe for concurrent use as long as each
// goroutine assembles into its own buffer.
type Assembler struct {
	tpl     *Template
	base    *Table          // transposed template, never mutated
	targets []int           // column index in base for each overlay
	mats    []*matrix.Dense // sims × periods, aligned with targets
	sims    int
}

// NewAssembler validates the registry against the template and snapshots it.
//
// Stage 1: every registered name must be a template variable.
// Stage 2: every variate must be sims × tpl.NumPeriods(), sims taken from
// the first one.
//
// Errors: ErrNilTable, ErrUnknownVariable, ErrShapeMismatch.
//
// Complexity: O(V·P) for the transposed base copy.
func NewAssembler(tpl *Template, reg *variate.Registry) (*Assembler, error) {
	if tpl == nil || reg == nil {
		return nil, ErrNilTable
	}
	a := &Assembler{tpl: tpl, base: tpl.Table()}

	names := reg.Names()
	for _, name := range names {
		k, ok := tpl.varIndex[name]
		if !ok {
			return nil, fmt.Errorf("NewAssembler: %q: %w", name, ErrUnknownVariable)
		}
		m, _ := reg.Get(name)
		if len(a.mats) == 0 {
			a.sims = m.Rows()
		}
		if err := matrix.ValidateShape(m, a.sims, tpl.NumPeriods()); err != nil {
			return nil, fmt.Errorf("NewAssembler: %q is %dx%d, want %dx%d: %w: %w",
				name, m.Rows(), m.Cols(), a.sims, tpl.NumPeriods(), ErrShapeMismatch, err)
		}
		a.targets = append(a.targets, k)
		a.mats = append(a.mats, m)
	}

	return a, nil
}

// Simulations returns the row count of the registered variates, or 0 when
// nothing is registered.
func (a *Assembler) Simulations() int { return a.sims }

// Template returns the template the assembler overlays onto.
func (a *Assembler) Template() *Template { return a.tpl }

// NewBuffer returns a fresh table shaped like the iteration tables, suitable
// for AssembleInto.
func (a *Assembler) NewBuffer() *Table { return a.base.Clone() }

// Assemble returns a newly allocated iteration table for simulation i.
func (a *Assembler) Assemble(i int) (*Table, error) {
	buf := a.NewBuffer()
	if err := a.AssembleInto(buf, i); err != nil {
		return nil, err
	}

	return buf, nil
}

// AssembleInto refills dst with the iteration table for simulation i. dst
// must come from NewBuffer (or an earlier Assemble) of this assembler.
//
// Static columns are restored from the template on every call, so a buffer
// mutated by a previous consumer is still assembled correctly.
//
// Errors: ErrNilTable, ErrShapeMismatch for a foreign buffer, and
// matrix.ErrOutOfRange when i is not a valid simulation index.
func (a *Assembler) AssembleInto(dst *Table, i int) error {
	if dst == nil {
		return ErrNilTable
	}
	if len(dst.cols) != len(a.base.cols) || dst.Len() != a.base.Len() {
		return fmt.Errorf("Assembler.AssembleInto: buffer shape: %w", ErrShapeMismatch)
	}
	if len(a.mats) > 0 && (i < 0 || i >= a.sims) {
		return fmt.Errorf("Assembler.AssembleInto(%d): %w", i, matrix.ErrOutOfRange)
	}

	for k, c := range a.base.cols {
		copy(dst.cols[k], c)
	}
	for n, k := range a.targets {
		row, err := a.mats[n].RowView(i)
		if err != nil {
			return fmt.Errorf("Assembler.AssembleInto(%d): %w", i, err)
		}
		copy(dst.cols[k], row)
	}

	return nil
}
