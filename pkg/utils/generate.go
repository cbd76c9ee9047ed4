package utils

import (
	"regexp"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

var nonDigits = regexp.MustCompile(`\D`)

// DigitsOnly strips everything but 0-9, e.g. "+254 700-111 222" -> "254700111222".
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
