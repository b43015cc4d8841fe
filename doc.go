// Package orderkey generates fractional order keys: short strings that can
// always be placed between two existing keys, so list items can be inserted
// or moved without renumbering their neighbours.
//
// Keys compare with plain byte-wise string comparison. A key is an integer
// part whose head letter encodes its own length ('a'..'z' upwards,
// 'Z'..'A' downwards) followed by an optional fractional part that never
// ends in the alphabet's zero digit.
//
//	a, _ := orderkey.KeyBetween("", "")   // "a0"
//	b, _ := orderkey.KeyBetween(a, "")    // "a1"
//	c, _ := orderkey.KeyBetween(a, b)     // "a0V"
//
// An empty string passed as a bound means "no bound".
package orderkey
