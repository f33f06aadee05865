package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQEntry[T any, P constraints.Ordered] struct {
	item T
	prio P
	seq  uint64
}

// Binary min-heap.
//
// Items with equal priority are dequeued in insertion order, which keeps
// algorithms on top of the queue deterministic.
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap List[_PQEntry[T, P]]
	seq  uint64
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		heap: NewList[_PQEntry[T, P]](cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, prio P) {
	self.heap.Add(_PQEntry[T, P]{item: item, prio: prio, seq: self.seq})
	self.seq += 1
	self._Up(self.heap.Length() - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	l := self.heap.Length()
	if l == 0 {
		var t T
		return t, false
	}
	top := self.heap[0]
	self.heap[0] = self.heap[l-1]
	self.heap = self.heap[:l-1]
	if l > 1 {
		self._Down(0)
	}
	return top.item, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.heap.Length()
}

func (self *PriorityQueue[T, P]) Clear() {
	self.heap = self.heap[:0]
	self.seq = 0
}

func (self *PriorityQueue[T, P]) _Less(i, j int) bool {
	a := self.heap[i]
	b := self.heap[j]
	if a.prio == b.prio {
		return a.seq < b.seq
	}
	return a.prio < b.prio
}

func (self *PriorityQueue[T, P]) _Up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !self._Less(i, parent) {
			break
		}
		self.heap[i], self.heap[parent] = self.heap[parent], self.heap[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(i int) {
	l := self.heap.Length()
	for {
		left := 2*i + 1
		if left >= l {
			break
		}
		smallest := left
		right := left + 1
		if right < l && self._Less(right, left) {
			smallest = right
		}
		if !self._Less(smallest, i) {
			break
		}
		self.heap[i], self.heap[smallest] = self.heap[smallest], self.heap[i]
		i = smallest
	}
}
