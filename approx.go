package orderkey

import "math"

// Float64Approx converts a key as generated by KeyBetween() to a float64.
// Because the range of keys is far larger than float64 can represent
// accurately, this is necessarily approximate. But for many use cases it should
// be, as they say, close enough for jazz.
func (g *Generator) Float64Approx(key string) (float64, error) {
	if err := g.Validate(key); err != nil {
		return 0.0, err
	}
	ip, fp, err := integerPart(key)
	if err != nil {
		return 0.0, err
	}

	base := float64(g.alpha.Len())
	digs := ip[1:]
	rv := 0.0
	for i := 0; i < len(digs); i++ {
		p := g.alpha.Index(digs[len(digs)-i-1])
		rv += math.Pow(base, float64(i)) * float64(p)
	}
	for i := 0; i < len(fp); i++ {
		p := g.alpha.Index(fp[i])
		rv += float64(p) / math.Pow(base, float64(i+1))
	}

	if ip[0] < 'a' {
		rv *= -1
	}
	return rv, nil
}

// Float64Approx approximates a base-62 key. See Generator.Float64Approx.
func Float64Approx(key string) (float64, error) {
	return std.Float64Approx(key)
}
