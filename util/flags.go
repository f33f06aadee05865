package util

//*******************************************
// flags
//*******************************************

// Per-node state of a graph algorithm.
//
// Flags are reset lazily: Get hands out the default value for every entry
// not touched since the last Reset. Not thread safe, use one instance per solver.
type Flags[T any] struct {
	flags     Array[T]
	_default  T
	counter   Array[int32]
	curr_iter int32
}

func NewFlags[T any](size int32, _default T) Flags[T] {
	flags := NewArray[T](int(size))
	for i := 0; i < int(size); i++ {
		flags[i] = _default
	}
	return Flags[T]{
		flags:     flags,
		_default:  _default,
		counter:   NewArray[int32](int(size)),
		curr_iter: 1,
	}
}

func (self *Flags[T]) Get(index int32) *T {
	if self.counter[index] != self.curr_iter {
		self.flags[index] = self._default
		self.counter[index] = self.curr_iter
	}
	return &self.flags[index]
}

// Returns true if the entry has been accessed since the last Reset.
func (self *Flags[T]) IsTouched(index int32) bool {
	return self.counter[index] == self.curr_iter
}

func (self *Flags[T]) Reset() {
	self.curr_iter += 1
}

func (self *Flags[T]) Length() int {
	return self.flags.Length()
}
