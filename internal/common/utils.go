package common

// WipeByteArray overwrites the contents of b with zeros. Used for password
// buffers read from the terminal once they have been copied into a form.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
