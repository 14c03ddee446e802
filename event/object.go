package event

import (
	"sync"

	"github.com/rs/xid"
)

// Params carries an event's payload as a closed set of named values. Only
// plain data and block/connection references are ever placed in it; it is
// not a general extension point.
type Params map[string]any

// Object is a single unit of work posted to a Manager. Its zero value is
// not usable; construct one with New.
type Object struct {
	id     string
	typ    Type
	params Params

	done chan struct{}
	once sync.Once
}

// New creates an Object of the given type with the given parameters. params
// may be nil.
func New(typ Type, params Params) *Object {
	if params == nil {
		params = Params{}
	}

	return &Object{
		id:     xid.New().String(),
		typ:    typ,
		params: params,
		done:   make(chan struct{}),
	}
}

// ID returns the event's correlation id, unique per Object.
func (o *Object) ID() string {
	return o.id
}

// Type returns the event's type.
func (o *Object) Type() Type {
	return o.typ
}

// Param returns the named parameter and whether it was present.
func (o *Object) Param(name string) (any, bool) {
	v, ok := o.params[name]

	return v, ok
}

// SetParam sets or overwrites a named parameter. Handlers use this to
// return a result to the poster before calling Done.
func (o *Object) SetParam(name string, value any) {
	o.params[name] = value
}

// Wait blocks until Done has been called.
func (o *Object) Wait() {
	<-o.done
}

// Done marks the event as fully handled and wakes any goroutine blocked in
// Wait. It is safe to call more than once or concurrently; only the first
// call has any effect.
func (o *Object) Done() {
	o.once.Do(func() { close(o.done) })
}

// IsDone reports whether Done has been called, without blocking.
func (o *Object) IsDone() bool {
	select {
	case <-o.done:
		return true
	default:
		return false
	}
}
