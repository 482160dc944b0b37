// Package stringutil provides string helpers for assertions on scraped
// page text: whitespace normalization, number extraction, and masking of
// sensitive values before they reach logs or reports.
package stringutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern = regexp.MustCompile(`\d+`)
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern  = regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`)
)

// NormalizeWhitespace collapses runs of whitespace, including newlines and
// tabs, into single spaces and trims the ends. Useful before comparing
// rendered text that browsers wrap arbitrarily.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractNumbers returns every unsigned integer found in s, in order.
func ExtractNumbers(s string) []int {
	matches := numberPattern.FindAllString(s, -1)
	numbers := make([]int, 0, len(matches))
	for _, match := range matches {
		n, err := strconv.Atoi(match)
		if err != nil {
			// Longer than an int; skip rather than truncate.
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// MaskSensitiveData replaces the middle of email addresses and the leading
// digits of NNN-NNN-NNNN phone numbers with asterisks, keeping just enough
// of each value to correlate log lines with test data.
func MaskSensitiveData(s string) string {
	s = emailPattern.ReplaceAllStringFunc(s, maskEmail)
	s = phonePattern.ReplaceAllStringFunc(s, maskPhone)
	return s
}

func maskEmail(email string) string {
	if len(email) <= 4 {
		return strings.Repeat("*", len(email))
	}
	return email[:2] + strings.Repeat("*", len(email)-4) + email[len(email)-2:]
}

func maskPhone(phone string) string {
	return "***-***-" + phone[len(phone)-4:]
}
