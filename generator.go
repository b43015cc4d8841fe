package orderkey

import (
	"slices"

	"github.com/rs/zerolog"
)

// Generator produces order keys in one alphabet. A Generator without
// jitter holds no mutable state and may be shared between goroutines.
type Generator struct {
	alpha  *Alphabet
	pick   pickFunc
	logger zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabet selects the digit alphabet. The default is Base62.
func WithAlphabet(a *Alphabet) Option {
	return func(g *Generator) {
		if a != nil {
			g.alpha = a
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator. Without options it behaves like the package
// level functions.
func New(opts ...Option) *Generator {
	g := &Generator{
		alpha:  Base62,
		pick:   centerDigit,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var std = New()

// Alphabet returns the generator's alphabet.
func (g *Generator) Alphabet() *Alphabet { return g.alpha }

// Validate reports whether key is a well-formed order key.
func (g *Generator) Validate(key string) error {
	return validateKey(key, g.alpha)
}

// KeyBetween returns a key strictly between a and b in byte order. An
// empty a means no lower bound and an empty b no upper bound; when both
// are set a must sort before b.
func (g *Generator) KeyBetween(a, b string) (string, error) {
	key, err := g.keyBetween(a, b)
	if err != nil {
		g.logger.Debug().Err(err).Str("a", a).Str("b", b).Msg("key generation failed")
		return "", err
	}
	g.logger.Debug().Str("a", a).Str("b", b).Str("key", key).Msg("key generated")
	return key, nil
}

func (g *Generator) keyBetween(a, b string) (string, error) {
	if a != "" {
		if err := g.Validate(a); err != nil {
			return "", err
		}
	}
	if b != "" {
		if err := g.Validate(b); err != nil {
			return "", err
		}
	}
	if a != "" && b != "" && a >= b {
		return "", &OrderError{A: a, B: b}
	}

	if a == "" {
		if b == "" {
			return g.alpha.First(), nil
		}
		return g.before(b)
	}
	if b == "" {
		return g.after(a)
	}

	ia, fa, err := integerPart(a)
	if err != nil {
		return "", err
	}
	ib, fb, err := integerPart(b)
	if err != nil {
		return "", err
	}
	if ia == ib {
		return g.fraction(ia, fa, fb)
	}
	i, ok, err := increment(ia, g.alpha)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", keyError(ia, ErrExhausted)
	}
	if i < b {
		return i, nil
	}
	return g.fraction(ia, fa, "")
}

// before returns a key below b with no lower bound.
func (g *Generator) before(b string) (string, error) {
	ib, fb, err := integerPart(b)
	if err != nil {
		return "", err
	}
	smallest := g.alpha.Smallest()
	if ib == smallest {
		return g.fraction(ib, "", fb)
	}
	if ib < b {
		return ib, nil
	}
	res, ok, err := decrement(ib, g.alpha)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", keyError(ib, ErrExhausted)
	}
	if res == smallest {
		// The bare sentinel is not a valid key; step into its fractions.
		return g.fraction(res, "", "")
	}
	return res, nil
}

// after returns a key above a with no upper bound.
func (g *Generator) after(a string) (string, error) {
	ia, fa, err := integerPart(a)
	if err != nil {
		return "", err
	}
	i, ok, err := increment(ia, g.alpha)
	if err != nil {
		return "", err
	}
	if !ok {
		return g.fraction(ia, fa, "")
	}
	return i, nil
}

func (g *Generator) fraction(i, fa, fb string) (string, error) {
	m, err := midpoint(fa, fb, g.alpha, g.pick)
	if err != nil {
		return "", err
	}
	return i + m, nil
}

// NKeysBetween returns n ascending keys, all strictly between a and b.
// Open ends behave as in KeyBetween. With one end open the keys step away
// from the other bound; with both bounds set they are split around a middle
// key so neither half grows long.
func (g *Generator) NKeysBetween(a, b string, n uint) ([]string, error) {
	switch {
	case n == 0:
		return []string{}, nil
	case n == 1:
		c, err := g.KeyBetween(a, b)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	case b == "":
		return walk(a, n, func(prev string) (string, error) {
			return g.KeyBetween(prev, "")
		})
	case a == "":
		keys, err := walk(b, n, func(next string) (string, error) {
			return g.KeyBetween("", next)
		})
		if err != nil {
			return nil, err
		}
		slices.Reverse(keys)
		return keys, nil
	}

	mid, err := g.KeyBetween(a, b)
	if err != nil {
		return nil, err
	}
	left, err := g.NKeysBetween(a, mid, n/2)
	if err != nil {
		return nil, err
	}
	right, err := g.NKeysBetween(mid, b, n-n/2-1)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, n)
	keys = append(keys, left...)
	keys = append(keys, mid)
	return append(keys, right...), nil
}

// walk calls step n times, feeding each result into the next call.
func walk(from string, n uint, step func(string) (string, error)) ([]string, error) {
	keys := make([]string, 0, n)
	for i := uint(0); i < n; i++ {
		k, err := step(from)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		from = k
	}
	return keys, nil
}

// KeyBetween returns a base-62 key between a and b. See Generator.KeyBetween.
func KeyBetween(a, b string) (string, error) {
	return std.KeyBetween(a, b)
}

// NKeysBetween returns n base-62 keys between a and b. See
// Generator.NKeysBetween.
func NKeysBetween(a, b string, n uint) ([]string, error) {
	return std.NKeysBetween(a, b, n)
}

// Validate checks a base-62 key.
func Validate(key string) error {
	return std.Validate(key)
}
