// Package binding evaluates a declarative table of reactive bindings.
//
// A binding names the output slots it owns, the input slots that drive it,
// and a pure compute function. The table is evaluated by a single dispatcher:
// on initial render every binding runs, and on an input change only bindings
// listing a changed slot run. Results are ordered by table position and then
// output position, so identical inputs always produce identical updates.
package binding

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/covidau/internal/services/dashboard/binding"

// Slot identifies an input or output slot on the page.
type Slot string

// Value is a computed output: formatted text or a chart specification.
type Value any

// Inputs maps input slots to their current raw values.
type Inputs map[Slot]string

// Get returns the value for slot, or "" when absent.
func (in Inputs) Get(slot Slot) string {
	if in == nil {
		return ""
	}
	return in[slot]
}

// ComputeFunc derives one value per output slot from the binding's inputs.
type ComputeFunc func(ctx context.Context, in Inputs) ([]Value, error)

// Binding declares that Outputs are recomputed by Compute whenever any of
// Inputs changes.
type Binding struct {
	Name    string
	Outputs []Slot
	Inputs  []Slot
	Compute ComputeFunc
}

// Update is one recomputed output.
type Update struct {
	Slot  Slot
	Value Value
}

// Observer receives one call per binding evaluation.
type Observer interface {
	ObserveBinding(binding string, elapsed time.Duration, err error)
}

// Table is a validated, immutable set of bindings.
type Table struct {
	bindings []Binding
	observer Observer
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures a Table.
type Option func(*Table)

// WithObserver reports evaluations to o.
func WithObserver(o Observer) Option {
	return func(t *Table) { t.observer = o }
}

// NewTable validates bindings and returns the dispatch table.
//
// Every binding needs a name, a compute function, at least one input and
// output, and each output slot may be owned by only one binding.
func NewTable(bindings []Binding, opts ...Option) (*Table, error) {
	owners := make(map[Slot]string)
	names := make(map[string]bool)
	owned := make([]Binding, 0, len(bindings))
	for i, b := range bindings {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return nil, fmt.Errorf("binding %d: name is required", i)
		}
		if names[name] {
			return nil, fmt.Errorf("binding %q: duplicate name", name)
		}
		names[name] = true
		if b.Compute == nil {
			return nil, fmt.Errorf("binding %q: compute function is required", name)
		}
		if len(b.Inputs) == 0 {
			return nil, fmt.Errorf("binding %q: at least one input slot is required", name)
		}
		if len(b.Outputs) == 0 {
			return nil, fmt.Errorf("binding %q: at least one output slot is required", name)
		}
		for _, out := range b.Outputs {
			if owner, ok := owners[out]; ok {
				return nil, fmt.Errorf("binding %q: output %q already bound by %q", name, out, owner)
			}
			owners[out] = name
		}
		b.Name = name
		b.Outputs = slices.Clone(b.Outputs)
		b.Inputs = slices.Clone(b.Inputs)
		owned = append(owned, b)
	}

	t := &Table{
		bindings: owned,
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

// Bindings returns a copy of the table's bindings in order.
func (t *Table) Bindings() []Binding {
	if t == nil {
		return nil
	}
	return slices.Clone(t.bindings)
}

// Outputs returns every output slot in table order.
func (t *Table) Outputs() []Slot {
	if t == nil {
		return nil
	}
	var out []Slot
	for _, b := range t.bindings {
		out = append(out, b.Outputs...)
	}
	return out
}

// Initial evaluates every binding, as on first render.
func (t *Table) Initial(ctx context.Context, in Inputs) ([]Update, error) {
	if t == nil {
		return nil, errors.New("binding table is nil")
	}
	return t.dispatch(ctx, in, func(Binding) bool { return true })
}

// Changed evaluates bindings that list any of changed as an input.
//
// A change to a slot no binding listens to yields no updates.
func (t *Table) Changed(ctx context.Context, in Inputs, changed ...Slot) ([]Update, error) {
	if t == nil {
		return nil, errors.New("binding table is nil")
	}
	return t.dispatch(ctx, in, func(b Binding) bool {
		for _, slot := range changed {
			if slices.Contains(b.Inputs, slot) {
				return true
			}
		}
		return false
	})
}

func (t *Table) dispatch(ctx context.Context, in Inputs, selected func(Binding) bool) ([]Update, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	var updates []Update
	for _, b := range t.bindings {
		if !selected(b) {
			continue
		}
		values, err := t.evaluate(ctx, b, in)
		if err != nil {
			return nil, err
		}
		for i, slot := range b.Outputs {
			updates = append(updates, Update{Slot: slot, Value: values[i]})
		}
	}
	return updates, nil
}

func (t *Table) evaluate(ctx context.Context, b Binding, in Inputs) ([]Value, error) {
	ctx, span := t.tracer.Start(ctx, "binding."+b.Name, trace.WithAttributes(
		attribute.String("binding.name", b.Name),
		attribute.Int("binding.outputs", len(b.Outputs)),
	))
	defer span.End()

	scoped := make(Inputs, len(b.Inputs))
	for _, slot := range b.Inputs {
		scoped[slot] = in.Get(slot)
	}

	start := t.now()
	values, err := b.Compute(ctx, scoped)
	if err == nil && len(values) != len(b.Outputs) {
		err = fmt.Errorf("returned %d values for %d outputs", len(values), len(b.Outputs))
	}
	if t.observer != nil {
		t.observer.ObserveBinding(b.Name, t.now().Sub(start), err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("binding %q: %w", b.Name, err)
	}
	return values, nil
}
