package nargs

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	argA = MustTag("a")
	argB = MustTag("b")
	argC = MustTag("c")
)

func TestHas(t *testing.T) {
	tests := []struct {
		args []interface{}
		tag  *Tag
		want bool
	}{
		{nil, argA, false},
		{[]interface{}{}, argA, false},
		{[]interface{}{argA.Bind(1)}, argA, true},
		{[]interface{}{argA.Bind(1)}, argB, false},
		{[]interface{}{argA.Bind(1), argB.Bind("s")}, argB, true},
		{[]interface{}{42, argB.Bind("s")}, argB, true},
		{[]interface{}{42, "plain"}, argA, false},
		{[]interface{}{argA.Bind(nil)}, argA, true},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tt.want, Has(tt.args, tt.tag))
		})
	}
}

func TestHasOrderIndependence(t *testing.T) {
	lists := [][]interface{}{
		{argA.Bind(1), argB.Bind(2), 42},
		{argB.Bind(2), 42, argA.Bind(1)},
		{42, argA.Bind(1), argB.Bind(2)},
	}
	for i, args := range lists {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.True(t, Has(args, argA))
			assert.True(t, Has(args, argB))
			assert.False(t, Has(args, argC))
			assert.True(t, HasUnnamedArguments(args))
		})
	}
}

func TestHasAllHasAny(t *testing.T) {
	tests := []struct {
		args []interface{}
	}{
		{nil},
		{[]interface{}{argA.Bind(1)}},
		{[]interface{}{argA.Bind(1), argB.Bind(2)}},
		{[]interface{}{argB.Bind(2), 42}},
		{[]interface{}{argC.Bind(3), argA.Bind(1)}},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t,
				Has(tt.args, argA) && Has(tt.args, argB),
				HasAll(tt.args, argA, argB))
			assert.Equal(t,
				Has(tt.args, argA) || Has(tt.args, argB),
				HasAny(tt.args, argA, argB))
		})
	}
}

func TestHasAllHasAnyZeroTags(t *testing.T) {
	args := []interface{}{argA.Bind(1), 42}

	// Fold identities: empty AND is true, empty OR is false.
	assert.True(t, HasAll(args))
	assert.False(t, HasAny(args))
	assert.True(t, HasAll(nil))
	assert.False(t, HasAny(nil))
}

func TestHasUnnamedArguments(t *testing.T) {
	tests := []struct {
		args []interface{}
		want bool
	}{
		{nil, false},
		{[]interface{}{}, false},
		{[]interface{}{argA.Bind(1)}, false},
		{[]interface{}{argA.Bind(1), argB.Bind(2)}, false},
		{[]interface{}{42}, true},
		{[]interface{}{argA.Bind(1), 42}, true},
		{[]interface{}{nil}, true},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tt.want, HasUnnamedArguments(tt.args))
		})
	}
}

func TestHasOtherThan(t *testing.T) {
	tests := []struct {
		args []interface{}
		tags []*Tag
		want bool
	}{
		{nil, nil, false},
		{nil, []*Tag{argA}, false},
		{[]interface{}{argA.Bind(1)}, nil, true},
		{[]interface{}{argA.Bind(1)}, []*Tag{argA}, false},
		{[]interface{}{argA.Bind(1), argB.Bind(2)}, []*Tag{argA}, true},
		{[]interface{}{argA.Bind(1), argB.Bind(2)}, []*Tag{argA, argB}, false},
		{[]interface{}{argA.Bind(1), argB.Bind(2)}, []*Tag{argA, argB, argC}, false},
		// Unnamed arguments are not named extras.
		{[]interface{}{argA.Bind(1), 42}, []*Tag{argA}, false},
		// Counting is per binding, a duplicate of a recognized tag is not
		// an extra.
		{[]interface{}{argA.Bind(1), argA.Bind(2)}, []*Tag{argA}, false},
		{[]interface{}{argA.Bind(1), argA.Bind(2), argB.Bind(3)}, []*Tag{argA}, true},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tt.want, HasOtherThan(tt.args, tt.tags...))
		})
	}
}

func TestHasOtherThanCountIdentity(t *testing.T) {
	args := []interface{}{argA.Bind(1), argB.Bind(2), argC.Bind(3), 42}

	count := func(tags ...*Tag) int {
		n := 0
		for _, arg := range args {
			if b, ok := arg.(Binding); ok && HasAny([]interface{}{b}, tags...) {
				n++
			}
		}
		return n
	}
	total := 0
	for _, arg := range args {
		if _, ok := arg.(Binding); ok {
			total++
		}
	}

	require.Equal(t, 3, total)
	assert.Equal(t, total > count(argA), HasOtherThan(args, argA))
	assert.Equal(t, total > count(argA, argB), HasOtherThan(args, argA, argB))
	assert.Equal(t, total > count(argA, argB, argC), HasOtherThan(args, argA, argB, argC))
}
