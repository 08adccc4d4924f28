package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strings"
)

// Charset skips 0/O/1/I/l so codes survive being read aloud or retyped.
const codeCharset = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// RandCode returns n characters drawn from codeCharset using crypto/rand.
func RandCode(n int) (string, error) {
	var b strings.Builder
	limit := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeCharset[x.Int64()])
	}
	return b.String(), nil
}
