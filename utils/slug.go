package utils

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"unicode"
)

const slugSuffixWidth = 6

// 36^6, the number of distinct slug suffixes.
const slugSuffixSpace = 36 * 36 * 36 * 36 * 36 * 36

// Slugify derives a lowercase url-safe identifier from a title and appends a
// random fixed-width base36 suffix. The suffix keeps slugs for identical
// titles apart; the store's uniqueness constraint is the correctness
// backstop and callers retry generation on a collision.
func Slugify(title string) string {
	return slugifyTitle(title) + "-" + slugSuffix()
}

func slugifyTitle(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		s = "article"
	}
	return s
}

// slugSuffix draws uniformly from [0, 36^6) and formats the value as exactly
// six base36 digits.
func slugSuffix() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	n := binary.BigEndian.Uint64(buf[:]) % slugSuffixSpace
	s := strconv.FormatUint(n, 36)
	for len(s) < slugSuffixWidth {
		s = "0" + s
	}
	return s
}
