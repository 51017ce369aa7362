package management

import (
	"EduPlatform/internal/models"
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateEnrollmentCode returns a random code drawn uniformly from A-Z0-9.
func GenerateEnrollmentCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, models.EnrollmentCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
