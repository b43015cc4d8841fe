package orderkey

// validateKey checks that key is a well-formed order key in alpha.
func validateKey(key string, alpha *Alphabet) error {
	// The bare sentinel is reserved; with a fractional part it is fine.
	if key == alpha.Smallest() {
		return keyError(key, ErrReservedKey)
	}
	_, f, err := integerPart(key)
	if err != nil {
		return err
	}
	for n := 1; n < len(key); n++ {
		if alpha.Index(key[n]) < 0 {
			return keyError(key, ErrInvalidDigit)
		}
	}
	if f != "" && f[len(f)-1] == alpha.Zero() {
		return keyError(key, ErrTrailingZero)
	}
	return nil
}
