package orderkey

// integerLength decodes the length of the integer part from its head.
// Lowercase heads a..z give lengths 2..27, uppercase heads Z..A give 2..27.
func integerLength(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	default:
		return 0, keyError(string(head), ErrInvalidHead)
	}
}

// integerPart splits key into its integer and fractional parts.
func integerPart(key string) (string, string, error) {
	if key == "" {
		return "", "", keyError(key, ErrTruncatedKey)
	}
	n, err := integerLength(key[0])
	if err != nil {
		return "", "", keyError(key, ErrInvalidHead)
	}
	if n > len(key) {
		return "", "", keyError(key, ErrTruncatedKey)
	}
	return key[:n], key[n:], nil
}

func validateInteger(x string) error {
	if x == "" {
		return keyError(x, ErrMalformedInteger)
	}
	n, err := integerLength(x[0])
	if err != nil {
		return err
	}
	if len(x) != n {
		return keyError(x, ErrMalformedInteger)
	}
	return nil
}

// increment returns x+1. ok is false when x is the largest integer.
func increment(x string, alpha *Alphabet) (next string, ok bool, err error) {
	if err := validateInteger(x); err != nil {
		return "", false, err
	}
	head := x[0]
	digs := []byte(x[1:])
	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d := alpha.Index(digs[i]) + 1
		if d == alpha.Len() {
			digs[i] = alpha.Zero()
		} else {
			digs[i] = alpha.Digit(d)
			carry = false
		}
	}
	if !carry {
		return string(head) + string(digs), true, nil
	}
	switch head {
	case 'Z':
		return alpha.First(), true, nil
	case 'z':
		return "", false, nil
	}
	h := head + 1
	if h > 'a' {
		// lowercase band grows one digit per head step
		digs = append(digs, alpha.Zero())
	} else {
		digs = digs[:len(digs)-1]
	}
	return string(h) + string(digs), true, nil
}

// decrement returns x-1. ok is false when x is the smallest integer.
func decrement(x string, alpha *Alphabet) (prev string, ok bool, err error) {
	if err := validateInteger(x); err != nil {
		return "", false, err
	}
	head := x[0]
	digs := []byte(x[1:])
	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d := alpha.Index(digs[i]) - 1
		if d == -1 {
			digs[i] = alpha.Max()
		} else {
			digs[i] = alpha.Digit(d)
			borrow = false
		}
	}
	if !borrow {
		return string(head) + string(digs), true, nil
	}
	switch head {
	case 'a':
		return string([]byte{'Z', alpha.Max()}), true, nil
	case 'A':
		return "", false, nil
	}
	h := head - 1
	if h < 'Z' {
		// uppercase band grows one digit per head step down
		digs = append(digs, alpha.Max())
	} else {
		digs = digs[:len(digs)-1]
	}
	return string(h) + string(digs), true, nil
}
