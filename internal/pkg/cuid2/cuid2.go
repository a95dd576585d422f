// Package cuid2 generates short collision-resistant identifiers used to tag
// incoming HTTP requests in logs.
package cuid2

import (
	crypto_rand "crypto/rand"
	"strings"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z (62 characters)
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const randomLength = 18

// encodeTimestampBase62 encodes a Unix timestamp (seconds) as a 6-character
// base62 string. Produces lexicographically sortable output for timestamps.
//
// Range: 0 to ~56 billion seconds (~1800 years from Unix epoch)
func encodeTimestampBase62(timestampSeconds int64) string {
	n := timestampSeconds
	result := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		remainder := n % 62
		result[i] = base62Alphabet[remainder]
		n = n / 62
	}
	return string(result)
}

// generateRandom generates a random base62 string using rejection sampling.
//
// Uses bit extraction with rejection sampling for uniform distribution:
// - Extracts 6 bits at a time (values 0-63)
// - Rejects values >= 62 to maintain uniform distribution
// - ~5.95 bits of entropy per character (log2(62))
func generateRandom(length int) string {
	// Request extra bytes to account for rejection sampling (~3% rejection rate)
	bytesNeeded := (length*6)/8 + 4
	bytes := make([]byte, bytesNeeded)
	_, err := crypto_rand.Read(bytes)
	if err != nil {
		panic("failed to read random bytes: " + err.Error())
	}

	var result strings.Builder
	bitBuffer := uint64(0)
	bitsInBuffer := uint(0)
	byteIndex := 0

	for result.Len() < length {
		for bitsInBuffer < 6 && byteIndex < len(bytes) {
			bitBuffer = (bitBuffer << 8) | uint64(bytes[byteIndex])
			bitsInBuffer += 8
			byteIndex++
		}

		value := (bitBuffer >> (bitsInBuffer - 6)) & 0x3f
		bitsInBuffer -= 6

		// Rejection sampling: only accept values < 62 for uniform distribution
		if value < 62 {
			result.WriteByte(base62Alphabet[value])
		}

		if byteIndex >= len(bytes) && result.Len() < length {
			_, err := crypto_rand.Read(bytes)
			if err != nil {
				panic("failed to read random bytes: " + err.Error())
			}
			byteIndex = 0
			bitBuffer = 0
			bitsInBuffer = 0
		}
	}

	return result.String()
}

// Generate returns a prefixed identifier with a time-sortable base62 prefix
// followed by 18 random base62 characters.
//
// Example:
//
//	Generate("req") // "req_0CL2KwaB3cD5eF7gH9iJ1k"
func Generate(prefix string) string {
	timestamp := encodeTimestampBase62(time.Now().Unix())
	return prefix + "_" + timestamp + generateRandom(randomLength)
}
