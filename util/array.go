package util

//*******************************************
// array
//*******************************************

// Fixed size slice.
type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make([]T, size)
}

func (self Array[T]) Length() int {
	return len(self)
}

func (self Array[T]) Get(index int) T {
	return self[index]
}

func (self Array[T]) Set(index int, value T) {
	self[index] = value
}

// Returns a shallow copy of the array.
func (self Array[T]) Copy() Array[T] {
	arr := NewArray[T](len(self))
	copy(arr, self)
	return arr
}
