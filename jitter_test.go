package orderkey

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterInterfaces(t *testing.T) {
	noJitter := NoJitter{}
	for _i := 0; _i < 100; _i++ {
		if noJitter.IntnRange(-5, 5) != 0 {
			t.Errorf("NoJitter should always return 0, got %d", noJitter.IntnRange(-5, 5))
		}
	}

	r := rand.New(rand.NewSource(42))
	randJitter := RandJitter{R: r}

	ranges := [][]int{{1, 5}, {10, 20}, {0, 1}, {5, 5}, {-3, 3}}
	for _, rng := range ranges {
		min, max := rng[0], rng[1]
		for _i := 0; _i < 100; _i++ {
			val := randJitter.IntnRange(min, max)
			if val < min || val > max {
				t.Errorf("RandJitter.IntnRange(%d, %d) returned %d, outside range", min, max, val)
			}
		}
	}
}

func TestNoJitterMatchesDefault(t *testing.T) {
	pairs := [][2]string{{"", ""}, {"a0", "a1"}, {"a1", "a5"}, {"a0V", "a1"}, {"", "a0"}}
	for _, p := range pairs {
		want, err := KeyBetween(p[0], p[1])
		require.NoError(t, err)
		got, err := KeyBetweenJitter(p[0], p[1], NoJitter{}, 3)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestKeyBetweenJitterInvariants(t *testing.T) {
	pairs := [][2]string{{"a01", "a03"}, {"a01", "a05"}, {"a0", "a0V"}, {"Zz", "a0"}, {"a0", ""}, {"zzzzzzzzzzzzzzzzzzzzzzzzzzz", ""}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		for i := 0; i < 100; i++ {
			r := rand.New(rand.NewSource(int64(i)))
			key, err := KeyBetweenJitter(a, b, RandJitter{R: r}, 5)
			require.NoError(t, err)

			_, frac, err := integerPart(key)
			require.NoError(t, err)
			if strings.HasSuffix(frac, "0") {
				t.Errorf("Generated key %s has trailing '0', violating invariant", key)
			}
			if err := Validate(key); err != nil {
				t.Errorf("Generated key %s is not a valid order key: %v", key, err)
			}
			if key <= a || (b != "" && key >= b) {
				t.Errorf("Generated key %s is not between %s and %s", key, a, b)
			}
		}
	}
}

func TestKeyBetweenJitterConsistency(t *testing.T) {
	a, b := "a01", "a0V"

	key1, err := KeyBetweenJitter(a, b, RandJitter{R: rand.New(rand.NewSource(42))}, 4)
	require.NoError(t, err)
	key2, err := KeyBetweenJitter(a, b, RandJitter{R: rand.New(rand.NewSource(42))}, 4)
	require.NoError(t, err)

	assert.Equal(t, key1, key2, "keys with same seed should be identical")
}

func TestJitterLimitations(t *testing.T) {
	collect := func(a, b string) map[string]bool {
		results := make(map[string]bool)
		for i := 0; i < 50; i++ {
			r := rand.New(rand.NewSource(int64(i)))
			key, err := KeyBetweenJitter(a, b, RandJitter{R: r}, 2)
			require.NoError(t, err)
			results[key] = true
		}
		return results
	}

	t.Run("No room for jitter", func(t *testing.T) {
		// "2" is the only digit between "1" and "3"
		results := collect("a01", "a03")
		assert.Len(t, results, 1)
		assert.True(t, results["a02"])
	})

	t.Run("Room for jitter", func(t *testing.T) {
		results := collect("a01", "a05")
		assert.Greater(t, len(results), 1)
		for k := range results {
			assert.Contains(t, []string{"a02", "a03", "a04"}, k)
		}
	})

	t.Run("Spread bounds the offset", func(t *testing.T) {
		// the fraction between "" and "V" centers on G; spread 2 allows E..I
		results := collect("a0", "a0V")
		for k := range results {
			assert.Contains(t, []string{"a0E", "a0F", "a0G", "a0H", "a0I"}, k)
		}
	})
}

func TestNKeysBetweenJitter(t *testing.T) {
	a, b := "a1", "a5"
	n := uint(5)

	allKeys := make([][]string, 0, 10)
	for iteration := 0; iteration < 10; iteration++ {
		r := rand.New(rand.NewSource(int64(iteration)))
		keys, err := NKeysBetweenJitter(a, b, n, RandJitter{R: r}, 100)
		require.NoError(t, err, "iteration %d", iteration)
		require.Len(t, keys, int(n))

		for i, key := range keys {
			if key <= a || key >= b {
				t.Errorf("Generated key %s is not between %s and %s on iteration %d", key, a, b, iteration)
			}
			if i > 0 && keys[i-1] >= key {
				t.Errorf("Keys are not in order: %s >= %s on iteration %d", keys[i-1], key, iteration)
			}
		}
		allKeys = append(allKeys, keys)
	}

	hasVariation := false
	for i := 1; i < len(allKeys); i++ {
		if !reflect.DeepEqual(allKeys[0], allKeys[i]) {
			hasVariation = true
			break
		}
	}
	assert.True(t, hasVariation, "all iterations produced %v", allKeys[0])
}

func TestWithJitterDisabled(t *testing.T) {
	g := New(WithJitter(nil, 5))
	key, err := g.KeyBetween("a0", "a1")
	require.NoError(t, err)
	assert.Equal(t, "a0V", key)

	g = New(WithJitter(RandJitter{R: rand.New(rand.NewSource(1))}, 0))
	key, err = g.KeyBetween("a0", "a1")
	require.NoError(t, err)
	assert.Equal(t, "a0V", key)
}
