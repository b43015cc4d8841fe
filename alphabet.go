package orderkey

import "fmt"

const (
	// Base62Digits is the default alphabet: digits, then uppercase, then lowercase.
	Base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// Base10Digits is mostly useful for readable tests.
	Base10Digits = "0123456789"
	// Base95Digits covers printable ASCII; space is the zero digit.
	Base95Digits = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

// Predefined alphabets.
var (
	Base62 = MustAlphabet(Base62Digits)
	Base10 = MustAlphabet(Base10Digits)
	Base95 = MustAlphabet(Base95Digits)
)

// integerDigits is the number of digits after the head of the longest
// integer part ('A' and 'z' heads).
const integerDigits = 26

// Alphabet is the numeral system used for both parts of a key. The first
// digit is the zero digit. An Alphabet never changes after construction.
type Alphabet struct {
	digits string
	index  [256]int16
}

// NewAlphabet checks that digits is at least two ASCII characters in
// strictly ascending order.
func NewAlphabet(digits string) (*Alphabet, error) {
	if len(digits) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 digits, got %d", ErrInvalidAlphabet, len(digits))
	}
	a := &Alphabet{digits: digits}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII byte 0x%02x at %d", ErrInvalidAlphabet, c, i)
		}
		if i > 0 && digits[i-1] >= c {
			return nil, fmt.Errorf("%w: %q is not strictly ascending at %d", ErrInvalidAlphabet, digits, i)
		}
		a.index[c] = int16(i)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(digits string) *Alphabet {
	a, err := NewAlphabet(digits)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) String() string { return a.digits }

// Len returns the base of the numeral system.
func (a *Alphabet) Len() int { return len(a.digits) }

// Zero returns the smallest digit.
func (a *Alphabet) Zero() byte { return a.digits[0] }

// Max returns the largest digit.
func (a *Alphabet) Max() byte { return a.digits[len(a.digits)-1] }

// Digit returns the digit with value i.
func (a *Alphabet) Digit(i int) byte { return a.digits[i] }

// Index returns the value of digit c, or -1 if c is not in the alphabet.
func (a *Alphabet) Index(c byte) int { return int(a.index[c]) }

// First returns the key handed out for an empty list ("a0" in base 62).
func (a *Alphabet) First() string {
	return string([]byte{'a', a.Zero()})
}

// Smallest returns the smallest integer part. It is reserved: a key may
// only use it when followed by a fractional part.
func (a *Alphabet) Smallest() string {
	b := make([]byte, integerDigits+1)
	b[0] = 'A'
	for i := 1; i < len(b); i++ {
		b[i] = a.Zero()
	}
	return string(b)
}
