package util

//*******************************************
// list
//*******************************************

type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}

func (self List[T]) Get(index int) T {
	return self[index]
}

func (self List[T]) Set(index int, value T) {
	self[index] = value
}

func (self List[T]) Length() int {
	return len(self)
}

// Removes and returns the last element.
func (self *List[T]) Pop() (T, bool) {
	l := len(*self)
	if l == 0 {
		var t T
		return t, false
	}
	value := (*self)[l-1]
	*self = (*self)[:l-1]
	return value, true
}
