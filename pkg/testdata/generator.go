// Package testdata generates randomized fixtures for tests: strings,
// emails, names, addresses and dates.
package testdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Seed makes subsequent generation deterministic. Call from tests that need
// reproducible data.
func Seed(seed uint64) {
	gofakeit.Seed(seed)
	rng = rand.New(rand.NewSource(int64(seed)))
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomString returns a random string of length n drawn from ASCII letters
// and, when includeDigits is set, digits.
func RandomString(n int, includeDigits bool) string {
	chars := letters
	if includeDigits {
		chars += digits
	}

	var builder strings.Builder
	builder.Grow(n)
	for i := 0; i < n; i++ {
		builder.WriteByte(chars[rng.Intn(len(chars))])
	}
	return builder.String()
}

// RandomEmail returns a random address at the given domain. An empty domain
// defaults to example.com.
func RandomEmail(domain string) string {
	if domain == "" {
		domain = "example.com"
	}
	return fmt.Sprintf("%s@%s", strings.ToLower(RandomString(8, false)), domain)
}

// RandomPhone returns a random phone number.
func RandomPhone() string {
	return gofakeit.Phone()
}

// RandomName returns a random first and last name.
func RandomName() (first, last string) {
	return gofakeit.FirstName(), gofakeit.LastName()
}

// Address is a generated postal address.
type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// RandomAddress returns a random postal address.
func RandomAddress() Address {
	addr := gofakeit.Address()
	return Address{
		Street:  addr.Street,
		City:    addr.City,
		State:   addr.State,
		Zip:     addr.Zip,
		Country: addr.Country,
	}
}

// RandomDate returns a random time between from and to. Zero bounds default
// to the last year.
func RandomDate(from, to time.Time) time.Time {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	return gofakeit.DateRange(from, to)
}
