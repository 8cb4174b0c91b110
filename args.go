// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package nargs

// Has reports whether some element of args is a Binding for tag. Only the
// tags represented in args matter; bound values are never inspected.
func Has(args []interface{}, tag *Tag) bool {
	for _, arg := range args {
		if b, ok := arg.(Binding); ok && b.tag == tag {
			return true
		}
	}
	return false
}

// HasAll reports whether args contains a Binding for every given tag. With
// zero tags it is vacuously true.
func HasAll(args []interface{}, tags ...*Tag) bool {
	for _, t := range tags {
		if !Has(args, t) {
			return false
		}
	}
	return true
}

// HasAny reports whether args contains a Binding for at least one of the
// given tags. With zero tags it is false.
func HasAny(args []interface{}, tags ...*Tag) bool {
	for _, t := range tags {
		if Has(args, t) {
			return true
		}
	}
	return false
}

// HasUnnamedArguments reports whether args contains at least one element
// that is not a Binding, i.e. a plain positional argument mixed in with
// named ones.
func HasUnnamedArguments(args []interface{}) bool {
	for _, arg := range args {
		if _, ok := arg.(Binding); !ok {
			return true
		}
	}
	return false
}

// HasOtherThan reports whether args contains at least one Binding whose tag
// is not among the given tags. It is the validation hook for rejecting
// typos and unsupported option names. Counting is per Binding: duplicate
// Bindings for a recognized tag do not count as extras.
func HasOtherThan(args []interface{}, tags ...*Tag) bool {
	var total, known int
	for _, arg := range args {
		b, ok := arg.(Binding)
		if !ok {
			continue
		}
		total++
		for _, t := range tags {
			if b.tag == t {
				known++
				break
			}
		}
	}
	return total > known
}
