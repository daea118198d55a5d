package engine

import (
	"github.com/deepnoodle-ai/except/errors"
	"github.com/deepnoodle-ai/except/exception"
)

// Handler is the body of a catch clause. It receives the exception being
// handled.
type Handler func(kind exception.Kind)

// Region is an open protected region. It is returned by Begin with its body
// already run; catch clauses are then declared with Catch and the region is
// closed with End, exactly once, whatever happened in the body.
//
// Once the body has returned the region no longer receives exceptions: a
// throw made before End goes to the next region out.
type Region struct {
	rt      *Runtime
	index   int
	kind    exception.Kind
	pending bool
	handled bool
	closed  bool
}

// Begin opens a protected region and runs body inside it. If body throws,
// the returned region holds the exception until a Catch clause accepts it or
// End forwards it.
//
// Opening a region when Capacity regions are already open is a fault.
func (rt *Runtime) Begin(body func()) *Region {
	r := &Region{rt: rt, index: rt.enter()}
	r.run(body)
	return r
}

func (r *Region) run(body func()) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		t, ok := v.(*transfer)
		if !ok || t.rt != r.rt || t.index != r.index {
			// Not ours: drop this frame and anything left above it, then
			// let the panic continue.
			r.rt.frames.truncate(r.index)
			panic(v)
		}
		r.pending = true
		r.kind = t.kind
		r.rt.frames.markHandling(r.index)
	}()
	if body != nil {
		body()
	}
	r.rt.frames.markHandling(r.index)
}

// Pending reports whether the body threw and the exception has not been
// accepted by a catch clause yet.
func (r *Region) Pending() bool {
	return r.pending && !r.handled
}

// Kind returns the exception the body threw, or exception.None if the body
// completed normally.
func (r *Region) Kind() exception.Kind {
	return r.kind
}

// Catch declares a handler for the given kind. The first clause whose kind
// catches the pending exception runs; later clauses are skipped. Declaring
// exception.Any catches every exception.
//
// While the handler runs the region is marked as handling, so a throw from
// inside the handler goes to the next region out.
func (r *Region) Catch(kind exception.Kind, handler Handler) *Region {
	if r.closed || !r.pending || r.handled {
		return r
	}
	if !r.rt.taxonomy.Catches(kind, r.kind) {
		return r
	}
	r.handled = true
	r.rt.frames.markHandling(r.index)
	r.rt.observer.OnCatch(CatchEvent{Kind: r.kind, Declared: kind, Index: r.index})
	if handler == nil {
		return r
	}

	completed := false
	defer func() {
		if !completed {
			r.rt.frames.truncate(r.index)
		}
	}()
	handler(r.kind)
	completed = true
	return r
}

// End closes the region. If the body threw and no clause matched, the
// exception is forwarded to the next region out, or to Terminate when this
// is the outermost region; in that case End does not return.
func (r *Region) End() {
	if r.closed {
		r.rt.fault(errors.E2003, "region %d already closed", r.index)
	}
	r.closed = true
	if r.pending && !r.handled {
		r.rt.frames.markHandling(r.index)
		r.rt.raise(r.kind, true)
	}
	r.rt.leave(r.index)
}

// Clause pairs a declared kind with its handler, for use with Try.
type Clause struct {
	Kind    exception.Kind
	Handler Handler
}

// Catch builds a Clause.
func Catch(kind exception.Kind, handler Handler) Clause {
	return Clause{Kind: kind, Handler: handler}
}

// Try runs body in a protected region with the given catch clauses,
// evaluated in order, and closes the region. It is equivalent to Begin,
// Catch for every clause, then End.
func (rt *Runtime) Try(body func(), clauses ...Clause) {
	r := rt.Begin(body)
	for _, c := range clauses {
		r.Catch(c.Kind, c.Handler)
	}
	r.End()
}
