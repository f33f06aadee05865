package util

//*******************************************
// optional
//*******************************************

type Optional[T any] struct {
	Value     T
	has_value bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		Value:     value,
		has_value: true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{
		has_value: false,
	}
}

func (self Optional[T]) HasValue() bool {
	return self.has_value
}
