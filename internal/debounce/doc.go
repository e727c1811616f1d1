// Package debounce collapses rapid successive calls into one.
//
// A [Debouncer] wraps an operation of type func(ctx, In) (Out, error) and a
// quiet period. Each [Debouncer.Call] schedules the operation after the
// quiet period and returns a [Deferred] for its result. A call made before
// the period elapses replaces the pending one: the timer restarts with the
// newest arguments and the replaced Deferred resolves with [ErrSuperseded].
//
// Only timers that have not fired are cancelled. An operation that already
// started keeps running and its Deferred resolves normally; callers that
// must ignore such late results tag their requests themselves.
//
//	d := debounce.New(search, 300*time.Millisecond)
//	res, err := d.Call(ctx, "foo").Wait(ctx)
//	if errors.Is(err, debounce.ErrSuperseded) {
//	    return // a newer call owns the result
//	}
package debounce
