package orderkey

import "errors"

var (
	ErrInvalidHead      = errors.New("invalid order key head")
	ErrTruncatedKey     = errors.New("order key shorter than its integer part")
	ErrMalformedInteger = errors.New("invalid integer part of order key")
	ErrReservedKey      = errors.New("reserved order key")
	ErrTrailingZero     = errors.New("trailing zero")
	ErrInvalidDigit     = errors.New("digit not in alphabet")
	ErrOrderViolation   = errors.New("order keys out of order")
	ErrExhausted        = errors.New("order key space exhausted")
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
	ErrBucketMismatch   = errors.New("lexorank buckets differ")
)

// KeyError reports a problem with a single key. Err is one of the
// sentinel errors above.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	switch e.Err {
	case ErrInvalidHead:
		if e.Key == "" {
			return "invalid order key head: "
		}
		return "invalid order key head: " + e.Key[:1]
	case ErrMalformedInteger:
		return "invalid integer part of order key: " + e.Key
	case ErrExhausted:
		if e.Key != "" && e.Key[0] >= 'a' {
			return "cannot increment any more: " + e.Key
		}
		return "cannot decrement any more: " + e.Key
	default:
		return "invalid order key: " + e.Key
	}
}

func (e *KeyError) Unwrap() error { return e.Err }

// OrderError is returned when a lower bound is not below the upper bound.
type OrderError struct {
	A, B string
}

func (e *OrderError) Error() string { return e.A + " >= " + e.B }

func (e *OrderError) Unwrap() error { return ErrOrderViolation }

func keyError(key string, err error) error {
	return &KeyError{Key: key, Err: err}
}
