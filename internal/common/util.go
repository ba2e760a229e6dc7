package common

// WipeByteArray overwrites b with zeros. Password bytes read from the
// terminal are wiped this way once they have been copied into a form.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
