package utils

import (
	"crypto/rand"
	"math/big"
)

const numberBytes = "0123456789"

func GenerateRandomNumericString(length int) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(numberBytes)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = numberBytes[num.Int64()]
	}

	return string(result)
}
