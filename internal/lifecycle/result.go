package lifecycle

// Status classifies the outcome of a lifecycle operation.
type Status int

const (
	StatusOK Status = iota
	StatusConflict
	StatusNotFound
	StatusUnauthorized
	StatusValidationFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusConflict:
		return "conflict"
	case StatusNotFound:
		return "not found"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusValidationFailed:
		return "validation failed"
	}
	return "unknown"
}

// Result is the outcome of one lifecycle operation. Entity is only
// meaningful when Status is StatusOK.
type Result[T any] struct {
	Status Status
	Entity T
}

func OK[T any](entity T) Result[T] {
	return Result[T]{Status: StatusOK, Entity: entity}
}

func Conflict[T any]() Result[T] {
	return Result[T]{Status: StatusConflict}
}

func NotFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

func Unauthorized[T any]() Result[T] {
	return Result[T]{Status: StatusUnauthorized}
}

func ValidationFailed[T any]() Result[T] {
	return Result[T]{Status: StatusValidationFailed}
}
