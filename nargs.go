// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package nargs gives Go call sites keyword-argument ergonomics. An argument
// name is declared once as a Tag; a caller pairs a Tag with a value using
// Tag.Bind and passes the resulting Bindings, mixed with any plain arguments,
// to a function taking variadic interface{} values. The callee constructs a
// Parser over the argument list and uses its presence and fetch operations to
// see which names the caller supplied.
//
//	var (
//		timeout = nargs.MustTag("timeout")
//		retries = nargs.MustTag("retries")
//	)
//
//	func connect(addr string, opts ...interface{}) error {
//		p := nargs.NewParser(opts...)
//		if p.HasOtherThan(timeout, retries) {
//			return p.CheckNames(timeout, retries)
//		}
//		if v := p.Get(timeout); nargs.Provided(v) {
//			// ...
//		}
//		// ...
//	}
//
//	connect("10.0.0.1:7", timeout.Bind(3*time.Second))
//
// Absence of a name is not an error; fetch operations report it with the
// NotProvided sentinel.
package nargs

// NotProvidedType represents the type of the global NotProvided value. One
// should use NotProvidedType in type switches only.
type NotProvidedType struct{}

// NotProvided is the value fetch operations return for a tag the call did
// not bind. It is a single process-wide instance, compared by identity, and
// is never mutated, so unlimited concurrent reads are safe.
var NotProvided = &NotProvidedType{}

// String implements fmt.Stringer.
func (*NotProvidedType) String() string {
	return "<not provided>"
}

// Provided reports whether a fetch result is an actual bound value rather
// than the NotProvided sentinel.
func Provided(v interface{}) bool {
	return v != NotProvided
}
