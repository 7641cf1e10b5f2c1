package util

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func TestStackPushPopTop(t *testing.T) {
	assert := assert.New(t)
	s := NewStack[string]()

	_, ok := s.Top()
	assert.False(ok)

	s.Push("root")
	s.Push("a")
	s.Push("b")
	top, ok := s.Top()
	assert.True(ok)
	assert.Equal("b", top)

	assert.Equal(2, s.Pop(2))
	top, _ = s.Top()
	assert.Equal("root", top)
	assert.Equal(1, s.Len())
}

func TestStackPopUnderflow(t *testing.T) {
	assert := assert.New(t)
	s := NewStack("root", "a")

	assert.Equal(2, s.Pop(5))
	assert.Equal(0, s.Len())
	assert.Equal(0, s.Pop(1))
	assert.Equal(0, s.Pop(-1))

	_, ok := s.Top()
	assert.False(ok)
}

func TestStackReset(t *testing.T) {
	s := NewStack(1, 2, 3)
	s.Reset(9)
	top, ok := s.Top()
	assert.True(t, ok)
	assert.Equal(t, 9, top)
	assert.Equal(t, 1, s.Len())
}

func TestSum(t *testing.T) {
	assert.Equal(t, "6", Sum([]int{1, 2, 3}).String())
	assert.Equal(t, "0", Sum([]uint8{}).String())
	assert.Equal(t, "-1", Sum([]int8{-3, 2}).String())
	assert.Equal(t, "9223372036854775808", Sum([]int64{math.MaxInt64, 1}).String())
	assert.Equal(t, "36893488147419103230", Sum([]uint64{math.MaxUint64, math.MaxUint64}).String())
}

func TestOrderedKeys(t *testing.T) {
	m := orderedmap.New[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, []string{"b", "a"}, OrderedKeys(m))

	var missing *orderedmap.OrderedMap[string, int]
	assert.Empty(t, OrderedKeys(missing))
}

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{"b": 1, "a": 2})
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestMin(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, "a", Min("b", "a"))
}
