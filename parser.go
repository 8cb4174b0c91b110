// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package nargs

import (
	"strconv"
	"strings"
)

// Parser holds the Bindings found among one call's arguments, in the order
// given, and answers presence and fetch queries over them. A Parser is a
// cheap per-call value; its set of Bindings is fixed at construction. Like
// the Bindings it holds, it is not meant to outlive the call expression
// that built it.
type Parser struct {
	bindings []Binding
	unnamed  int
}

// NewParser collects the Bindings among args, preserving their relative
// order. Non-Binding arguments are counted for HasUnnamedArguments and play
// no further role. Construction never fails.
func NewParser(args ...interface{}) *Parser {
	p := &Parser{}
	for _, arg := range args {
		if b, ok := arg.(Binding); ok {
			p.bindings = append(p.bindings, b)
		} else {
			p.unnamed++
		}
	}
	return p
}

// Get returns the value bound to tag, or NotProvided if the call did not
// bind it. Bindings are scanned in construction order and the first match
// wins: when a call carries duplicate Bindings for one tag, later ones are
// shadowed. This is defined behavior, not an error.
func (p *Parser) Get(tag *Tag) interface{} {
	for _, b := range p.bindings {
		if b.tag == tag {
			return b.value
		}
	}
	return NotProvided
}

// Fetch resolves each given tag independently by the Get rule and returns
// one result per tag, in request order. With zero tags it returns nil.
func (p *Parser) Fetch(tags ...*Tag) []interface{} {
	if len(tags) == 0 {
		return nil
	}
	values := make([]interface{}, len(tags))
	for i, t := range tags {
		values[i] = p.Get(t)
	}
	return values
}

// Has reports whether the call bound tag.
func (p *Parser) Has(tag *Tag) bool {
	for _, b := range p.bindings {
		if b.tag == tag {
			return true
		}
	}
	return false
}

// HasAll reports whether the call bound every given tag. With zero tags it
// is vacuously true.
func (p *Parser) HasAll(tags ...*Tag) bool {
	for _, t := range tags {
		if !p.Has(t) {
			return false
		}
	}
	return true
}

// HasAny reports whether the call bound at least one of the given tags.
// With zero tags it is false.
func (p *Parser) HasAny(tags ...*Tag) bool {
	for _, t := range tags {
		if p.Has(t) {
			return true
		}
	}
	return false
}

// HasUnnamedArguments reports whether the construction argument list
// contained at least one non-Binding element.
func (p *Parser) HasUnnamedArguments() bool {
	return p.unnamed > 0
}

// HasOtherThan reports whether the call bound a tag that is not among the
// given tags. Counting is per Binding, see the free function HasOtherThan.
func (p *Parser) HasOtherThan(tags ...*Tag) bool {
	var known int
	for _, b := range p.bindings {
		for _, t := range tags {
			if b.tag == t {
				known++
				break
			}
		}
	}
	return len(p.bindings) > known
}

// Len returns the number of retained Bindings.
func (p *Parser) Len() int {
	return len(p.bindings)
}

// Empty reports whether the call bound no tags at all.
func (p *Parser) Empty() bool {
	return len(p.bindings) == 0
}

// Bindings returns a copy of the retained Bindings in construction order.
func (p *Parser) Bindings() []Binding {
	cp := make([]Binding, len(p.bindings))
	copy(cp, p.bindings)
	return cp
}

// Tags returns the tags of the retained Bindings in construction order,
// duplicates included.
func (p *Parser) Tags() []*Tag {
	tags := make([]*Tag, len(p.bindings))
	for i, b := range p.bindings {
		tags[i] = b.tag
	}
	return tags
}

// Values returns the values of the retained Bindings in construction order.
func (p *Parser) Values() []interface{} {
	values := make([]interface{}, len(p.bindings))
	for i, b := range p.bindings {
		values[i] = b.value
	}
	return values
}

// Map returns the retained Bindings as a tag to value mapping. For
// duplicate tags the first Binding wins, matching Get.
func (p *Parser) Map() map[*Tag]interface{} {
	m := make(map[*Tag]interface{}, len(p.bindings))
	for _, b := range p.bindings {
		if _, ok := m[b.tag]; !ok {
			m[b.tag] = b.value
		}
	}
	return m
}

// Walk passes every retained Binding to cb in construction order. If cb
// returns an error the walk stops and returns it.
func (p *Parser) Walk(cb func(b Binding) error) (err error) {
	for _, b := range p.bindings {
		if err = cb(b); err != nil {
			return
		}
	}
	return
}

// CheckNames returns an ErrUnexpectedNamedArg error naming the first bound
// tag that is not among accept, or nil if every bound tag is recognized.
func (p *Parser) CheckNames(accept ...*Tag) error {
	return p.Walk(func(b Binding) error {
		for _, t := range accept {
			if t == b.tag {
				return nil
			}
		}
		return ErrUnexpectedNamedArg.NewError(strconv.Quote(b.tag.name))
	})
}

// String implements fmt.Stringer.
func (p *Parser) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	last := len(p.bindings) - 1
	for i, b := range p.bindings {
		sb.WriteString(b.String())
		if i != last {
			sb.WriteString(", ")
		}
	}
	sb.WriteString(")")
	return sb.String()
}
