package orderkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket represents a logical grouping or namespace for lexoranks.
// It's implemented as a uint8, allowing for up to 256 different buckets.
// Buckets are useful for organizing related items or implementing
// multi-tenant systems where different tenants need separate ordering.
type Bucket uint8

// Lexorank is an order key scoped to a bucket. Ranks only compare
// meaningfully within the same bucket.
type Lexorank struct {
	bucket Bucket
	key    string
}

// String returns a string representation of the Lexorank in the format "bucket|key".
//
// Example: "1|a1" represents bucket 1 with key "a1"
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// NewLexorank creates a new Lexorank with the specified bucket and key.
// The key is not validated; use ParseLexorank for untrusted input.
func NewLexorank(bucket Bucket, key string) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// Bucket returns the bucket identifier for this lexorank.
func (rk Lexorank) Bucket() Bucket {
	return rk.bucket
}

// Key returns the order key within the bucket.
func (rk Lexorank) Key() string {
	return rk.key
}

// IsZero reports whether rk carries no key. The zero Lexorank stands for an
// open end in LexorankBetween.
func (rk Lexorank) IsZero() bool {
	return rk.key == ""
}

// ParseLexorank parses the "bucket|key" form produced by String and
// validates the key against the generator's alphabet.
func (g *Generator) ParseLexorank(s string) (Lexorank, error) {
	bs, key, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, fmt.Errorf("invalid lexorank %q: missing bucket separator", s)
	}
	b, err := strconv.ParseUint(bs, 10, 8)
	if err != nil {
		return Lexorank{}, fmt.Errorf("invalid lexorank %q: bucket: %w", s, err)
	}
	if err := g.Validate(key); err != nil {
		return Lexorank{}, fmt.Errorf("invalid lexorank %q: %w", s, err)
	}
	return Lexorank{bucket: Bucket(b), key: key}, nil
}

// LexorankBetween returns a rank in bucket between a and b. Either bound
// may be the zero Lexorank; a non-zero bound must belong to bucket.
func (g *Generator) LexorankBetween(bucket Bucket, a, b Lexorank) (Lexorank, error) {
	for _, rk := range []Lexorank{a, b} {
		if !rk.IsZero() && rk.bucket != bucket {
			return Lexorank{}, fmt.Errorf("%w: %s not in bucket %d", ErrBucketMismatch, rk, bucket)
		}
	}
	key, err := g.KeyBetween(a.key, b.key)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: bucket, key: key}, nil
}

// ParseLexorank parses a base-62 lexorank.
func ParseLexorank(s string) (Lexorank, error) {
	return std.ParseLexorank(s)
}
