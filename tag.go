// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package nargs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tag is a unique identity naming one argument. A Tag carries no data beyond
// its name; two Tags denote the same argument iff they are the same pointer.
// The name exists for diagnostics and registry collision checks only.
type Tag struct {
	name string
}

// Declared tags by name. Declaration is program definition time work, so the
// map is unsynchronized like any package level registration.
var tagRegistry = map[string]*Tag{}

// NewTag declares a new Tag under the given name and registers it. Declaring
// the same name twice is a definition-time error and returns
// ErrTagRedeclared; an empty name returns ErrInvalidTagName. NewTag is not
// safe for concurrent use; declare tags from package level variables or init
// functions.
func NewTag(name string) (*Tag, error) {
	if name == "" {
		return nil, ErrInvalidTagName
	}
	if _, ok := tagRegistry[name]; ok {
		return nil, ErrTagRedeclared.NewError(strconv.Quote(name))
	}
	t := &Tag{name: name}
	tagRegistry[name] = t
	return t, nil
}

// MustTag is like NewTag but panics on error. It is the intended form for
// declaring a tag as a package level variable:
//
//	var verbose = nargs.MustTag("verbose")
func MustTag(name string) *Tag {
	t, err := NewTag(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the Tag declared under name, if any.
func Lookup(name string) (*Tag, bool) {
	t, ok := tagRegistry[name]
	return t, ok
}

// TagNames returns the names of all declared tags, sorted.
func TagNames() []string {
	names := make([]string, 0, len(tagRegistry))
	for name := range tagRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name the Tag was declared under.
func (t *Tag) Name() string {
	return t.name
}

// String implements fmt.Stringer.
func (t *Tag) String() string {
	return t.name
}

// Bind pairs the Tag with a caller supplied value, producing the Binding to
// pass among a call's arguments. Binding any value, nil included, is well
// formed and cannot fail. The value is held as given, not copied; a Binding
// is only meant to live for the call expression it is passed to.
func (t *Tag) Bind(value interface{}) Binding {
	return Binding{tag: t, value: value}
}

// Binding associates one Tag with a value supplied at a specific call site.
// Bindings are created with Tag.Bind and never mutated afterwards.
type Binding struct {
	tag   *Tag
	value interface{}
}

// Tag returns the Binding's tag.
func (b Binding) Tag() *Tag {
	return b.tag
}

// Value returns the value the Binding was created with.
func (b Binding) Value() interface{} {
	return b.value
}

// String implements fmt.Stringer.
func (b Binding) String() string {
	var sb strings.Builder
	if b.tag == nil {
		sb.WriteString("<nil>")
	} else {
		sb.WriteString(b.tag.name)
	}
	if v, ok := b.value.(bool); ok && v {
		return sb.String()
	}
	sb.WriteString("=")
	switch v := b.value.(type) {
	case string:
		sb.WriteString(strconv.Quote(v))
	case fmt.Stringer:
		sb.WriteString(v.String())
	default:
		sb.WriteString(fmt.Sprint(v))
	}
	return sb.String()
}
