package knodes

import (
	"strconv"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/kframe/kgraph"
)

func TestMap(t *testing.T) {
	m := NewMap(strconv.Itoa)
	var got []string
	kgraph.Pipe[string](m, NewForEach(func(s string) { got = append(got, s) }))

	m.In0().Receive(1)
	m.In0().Receive(23)
	assert.Equal(t, []string{"1", "23"}, got)
}

func TestFilter(t *testing.T) {
	t.Run("forwards matching values", func(t *testing.T) {
		even := NewFilter(func(v int) bool { return v%2 == 0 }, kgraph.WithLabel("even"))
		var got []int
		kgraph.Pipe[int](even, NewForEach(func(v int) { got = append(got, v) }))

		for i := range 5 {
			even.In0().Receive(i)
		}
		assert.Equal(t, []int{0, 2, 4}, got)
		assert.Equal(t, 2, even.Dropped())
		assert.Equal(t, "even", even.Label())

		even.Update()
		assert.Equal(t, []int{0, 2, 4, 4}, got)
	})

	t.Run("update never resends a rejected value", func(t *testing.T) {
		big := NewFilter(func(v int) bool { return v > 10 })
		var got []int
		kgraph.Pipe[int](big, NewForEach(func(v int) { got = append(got, v) }))

		big.In0().Receive(3)
		big.Update()
		assert.Equal(t, 0, len(got))

		big.In0().Receive(11)
		big.In0().Receive(4)
		big.Update()
		assert.Equal(t, []int{11, 11}, got)
	})

	t.Run("ticked through a group", func(t *testing.T) {
		big := NewFilter(func(v int) bool { return v > 10 })
		var got []int
		kgraph.Pipe[int](big, NewForEach(func(v int) { got = append(got, v) }))

		big.In0().Receive(1)
		kgraph.NewGroup[kgraph.GenericNode](big).UpdateAll()
		assert.Equal(t, 0, len(got))
	})
}

func TestForEachIsTraversed(t *testing.T) {
	src := NewValue(3)
	double := NewMap(func(v int) int { return v * 2 })
	sink := NewForEach(func(int) {})
	kgraph.Pipe[int](kgraph.Pipe[int](src, double), sink)

	assert.Equal(t, 1, len(kgraph.Collect[*ForEach[int]](src)))
	assert.Equal(t, 1, len(kgraph.Collect[*Map[int, int]](src)))
	assert.Equal(t, 1, len(kgraph.Collect[*Value[int]](src)))
}
