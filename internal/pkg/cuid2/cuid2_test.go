package cuid2

import (
	"regexp"
	"strings"
	"testing"
)

func TestEncodeTimestampBase62(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Zero timestamp", 0, "000000"},
		{"One second", 1, "000001"},
		{"62 seconds", 62, "000010"},
		{"One minute", 60, "00000y"},
		{"One hour", 3600, "0000w4"},
		{"One day", 86400, "000MTY"},
		{"Unix epoch test", 1704067200, "1rK5iq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := encodeTimestampBase62(tt.seconds)
			if result != tt.expected {
				t.Errorf("encodeTimestampBase62(%d) = %s, want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestEncodeTimestampSortable(t *testing.T) {
	prev := encodeTimestampBase62(0)
	for _, s := range []int64{1, 60, 3600, 86400, 1704067200} {
		cur := encodeTimestampBase62(s)
		if cur <= prev {
			t.Errorf("encoding not sortable: %s (ts %d) <= %s", cur, s, prev)
		}
		prev = cur
	}
}

func TestGenerateRandom(t *testing.T) {
	length := 24
	id := generateRandom(length)

	if len(id) != length {
		t.Errorf("Generated ID length = %d, want %d", len(id), length)
	}

	for _, c := range id {
		if !strings.ContainsRune(base62Alphabet, c) {
			t.Errorf("ID contains non-base62 character: %c in %s", c, id)
		}
	}

	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := generateRandom(length)
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^req_[0-9A-Za-z]{24}$`)

	id := Generate("req")
	if !pattern.MatchString(id) {
		t.Errorf("Generate(\"req\") = %s, does not match %s", id, pattern)
	}

	other := Generate("req")
	if id == other {
		t.Errorf("Generate produced duplicate IDs: %s", id)
	}
}
