// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package nargs

import (
	"reflect"
	"strconv"
	"strings"
)

// TagVar is a struct to destructure one named argument from a Parser.
type TagVar struct {
	Tag         *Tag
	Value       interface{}
	ValueF      func() interface{}
	AcceptTypes []string
}

// NewTagVar creates a new TagVar with the given tag and accepted type names.
func NewTagVar(tag *Tag, types ...string) *TagVar {
	return &TagVar{Tag: tag, AcceptTypes: types}
}

// NewTagVarF creates a new TagVar with the given tag, default value creator
// func and accepted type names.
func NewTagVarF(tag *Tag, value func() interface{}, types ...string) *TagVar {
	return &TagVar{Tag: tag, ValueF: value, AcceptTypes: types}
}

// typeName returns the name matched against TagVar.AcceptTypes.
func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Destructure fills every dst from the Parser's Bindings. A TagVar whose
// tag the call did not bind gets its ValueF default if set, otherwise
// NotProvided.
// Return errors:
// - ArgumentTypeError if a bound value fails a TagVar's accept-type check.
// - UnexpectedNamedArg if the call bound a tag not covered by dst.
func (p *Parser) Destructure(dst ...*TagVar) error {
	rest, err := p.DestructureVar(dst...)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return ErrUnexpectedNamedArg.NewError(strconv.Quote(rest[0].tag.name))
	}
	return nil
}

// DestructureVar destructures like Destructure and returns the Bindings not
// covered by dst instead of rejecting them.
// Returns ArgumentTypeError if a bound value fails an accept-type check.
func (p *Parser) DestructureVar(dst ...*TagVar) (rest []Binding, err error) {
	covered := make(map[*Tag]struct{}, len(dst))

read:
	for _, d := range dst {
		covered[d.Tag] = struct{}{}

		v := p.Get(d.Tag)
		if v == NotProvided {
			if d.ValueF != nil {
				d.Value = d.ValueF()
			} else {
				d.Value = NotProvided
			}
			continue
		}

		if len(d.AcceptTypes) == 0 {
			d.Value = v
			continue
		}

		found := typeName(v)
		for _, t := range d.AcceptTypes {
			if found == t {
				d.Value = v
				continue read
			}
		}
		return nil, NewArgumentTypeError(
			strconv.Quote(d.Tag.name),
			strings.Join(d.AcceptTypes, "|"),
			found,
		)
	}

	for _, b := range p.bindings {
		if _, ok := covered[b.tag]; !ok {
			rest = append(rest, b)
		}
	}
	return rest, nil
}
