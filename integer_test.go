package orderkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerLength(t *testing.T) {
	cases := map[byte]int{'a': 2, 'b': 3, 'z': 27, 'Z': 2, 'Y': 3, 'A': 27}
	for head, want := range cases {
		got, err := integerLength(head)
		require.NoError(t, err)
		assert.Equal(t, want, got, "head %c", head)
	}

	for _, head := range []byte{'0', '~', ' ', '[', '`', '{'} {
		_, err := integerLength(head)
		assert.ErrorIs(t, err, ErrInvalidHead, "head %q", head)
	}
}

func TestIntegerPart(t *testing.T) {
	i, f, err := integerPart("b12xyz")
	require.NoError(t, err)
	assert.Equal(t, "b12", i)
	assert.Equal(t, "xyz", f)

	i, f, err = integerPart("Zz")
	require.NoError(t, err)
	assert.Equal(t, "Zz", i)
	assert.Equal(t, "", f)

	_, _, err = integerPart("b1")
	assert.ErrorIs(t, err, ErrTruncatedKey)

	_, _, err = integerPart("")
	assert.ErrorIs(t, err, ErrTruncatedKey)
}

func TestIncrementDecrement(t *testing.T) {
	assert := assert.New(t)

	inc := func(x, exp string) {
		act, ok, err := increment(x, Base62)
		assert.NoError(err)
		assert.True(ok)
		assert.Equal(exp, act, "increment(%s)", x)
	}
	dec := func(x, exp string) {
		act, ok, err := decrement(x, Base62)
		assert.NoError(err)
		assert.True(ok)
		assert.Equal(exp, act, "decrement(%s)", x)
	}

	inc("a0", "a1")
	inc("az", "b00")
	inc("bzz", "c000")
	inc("Zy", "Zz")
	inc("Zz", "a0")
	inc("Yzz", "Z0")
	inc("A"+strings.Repeat("z", 26), "B"+strings.Repeat("0", 25))

	dec("a1", "a0")
	dec("a0", "Zz")
	dec("b00", "az")
	dec("Z0", "Yzz")
	dec("Y00", "Xzzz")
	dec("A"+strings.Repeat("0", 25)+"1", "A"+strings.Repeat("0", 26))

	_, _, err := increment("a00", Base62)
	assert.ErrorIs(err, ErrMalformedInteger)
	_, _, err = decrement("Z", Base62)
	assert.ErrorIs(err, ErrMalformedInteger)
	_, _, err = increment("", Base62)
	assert.ErrorIs(err, ErrMalformedInteger)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	for _, alpha := range []*Alphabet{Base10, Base62} {
		x := "Y" + strings.Repeat(string(alpha.Max()), 2)
		for _i := 0; _i < 300; _i++ {
			next, ok, err := increment(x, alpha)
			require.NoError(t, err)
			require.True(t, ok)
			require.Less(t, x, next)

			back, ok, err := decrement(next, alpha)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, x, back)
			x = next
		}
	}
}

func TestMidpoint(t *testing.T) {
	assert := assert.New(t)

	test := func(alpha *Alphabet, a, b, exp string) {
		act, err := midpoint(a, b, alpha, nil)
		assert.NoError(err)
		assert.Equal(exp, act, "midpoint(%q, %q)", a, b)
	}

	test(Base10, "", "", "5")
	test(Base10, "49", "5", "495")
	test(Base10, "1", "2", "15")
	test(Base10, "", "1", "05")
	test(Base10, "", "01", "005")
	test(Base10, "9", "", "95")
	test(Base62, "", "V", "G")
	test(Base62, "V", "", "l")
	test(Base62, "125", "129", "127")
	test(Base62, "0V", "1", "0l")

	_, err := midpoint("10", "2", Base10, nil)
	assert.ErrorIs(err, ErrTrailingZero)
	_, err = midpoint("1", "20", Base10, nil)
	assert.ErrorIs(err, ErrTrailingZero)
	_, err = midpoint("5", "5", Base10, nil)
	assert.ErrorIs(err, ErrOrderViolation)
}
