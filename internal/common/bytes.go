package common

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are wiped once they have been handed to the service layer.
//
// A nil slice is ignored.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
