package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[int32, float64](4)
	prios := []float64{5, 1, 4, 2, 3, 0.5, 7}
	for i, p := range prios {
		pq.Enqueue(int32(i), p)
	}
	require.Equal(t, len(prios), pq.Length())

	order := NewList[int32](len(prios))
	for {
		item, ok := pq.Dequeue()
		if !ok {
			break
		}
		order.Add(item)
	}
	assert.Equal(t, List[int32]{5, 1, 3, 4, 2, 0, 6}, order)
}

func TestPriorityQueueStableTies(t *testing.T) {
	pq := NewPriorityQueue[string, int](4)
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 0)
	pq.Enqueue("c", 1)
	pq.Enqueue("d", 1)

	got := []string{}
	for pq.Length() > 0 {
		item, _ := pq.Dequeue()
		got = append(got, item)
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, got)
}

func TestFlagsReset(t *testing.T) {
	type flag struct{ dist float64 }
	flags := NewFlags[flag](3, flag{-1})

	f := flags.Get(1)
	f.dist = 10
	assert.True(t, flags.IsTouched(1))
	assert.False(t, flags.IsTouched(2))
	assert.Equal(t, 10.0, flags.Get(1).dist)

	flags.Reset()
	assert.False(t, flags.IsTouched(1))
	assert.Equal(t, -1.0, flags.Get(1).dist)
}
