// Package validate holds the pure signup validation rules. Every predicate
// is stateless; age checks take the reference time as a parameter so callers
// control the clock.
package validate

import (
	"regexp"
	"time"
)

const adultAge = 18

var (
	// One or more non-space, non-@ characters around a single "@", with a
	// dot-separated TLD part.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Space-separated tokens of Latin letters (including the Latin-1
	// supplement accents), apostrophes and hyphens.
	namePattern = regexp.MustCompile(`^[A-Za-zÀ-ÿ'-]+(?:\s[A-Za-zÀ-ÿ'-]+)*$`)
	// Exactly five ASCII digits.
	zipcodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

// Password reports whether the password is non-empty and at least six
// characters long.
func Password(s string) bool {
	return len(s) >= 6
}

// Email reports whether the string has a local@domain.tld shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Name reports whether the string is a valid person or city name.
func Name(s string) bool {
	return namePattern.MatchString(s)
}

// Zipcode reports whether the string is a five-digit postal code.
func Zipcode(s string) bool {
	return zipcodePattern.MatchString(s)
}

// Underage reports whether the person born at birth is younger than 18 as of
// now. Someone whose 18th birthday falls on now's calendar day is an adult.
func Underage(birth, now time.Time) bool {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age < adultAge
}
