package stringsx

import "github.com/clinia/numx/randx"

const AlphaNum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Random returns an alphanumeric string of the given length drawn from the
// process-wide generator.
func Random(length int) string {
	return RandomFrom(randx.Default(), length, AlphaNum)
}

// RandomFrom returns a string of length bytes picked from alphabet with r.
// An empty alphabet yields an empty string.
func RandomFrom(r *randx.Rand, length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}

	letters := []byte(alphabet)
	b := make([]byte, length)
	for i := range b {
		b[i] = randx.MustPick(r, letters)
	}
	return string(b)
}
