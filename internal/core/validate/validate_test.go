package validate

import (
	"testing"
	"time"
)

func TestPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"12345", false},
		{"123456", true},
		{"correct horse", true},
	}
	for _, c := range cases {
		if got := Password(c.in); got != c.want {
			t.Errorf("Password(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"test@example.com", true},
		{"plainaddress", false},
		{"@missing.com", false},
		{"", false},
		{"no-tld@example", false},
		{"two words@example.com", false},
	}
	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Dupont", true},
		{"Jean-Pierre", true},
		{"O'Connor", true},
		{"Aix en Provence", true},
		{"Héloïse", true},
		{"", false},
		{"Jean2", false},
		{"  Dupont", false},
	}
	for _, c := range cases {
		if got := Name(c.in); got != c.want {
			t.Errorf("Name(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestZipcode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"75001", true},
		{"1234", false},
		{"123456", false},
		{"7500a", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Zipcode(c.in); got != c.want {
			t.Errorf("Zipcode(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUnderage(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	// 18th birthday is today: adult.
	if Underage(now.AddDate(-18, 0, 0), now) {
		t.Errorf("18th birthday today should not be underage")
	}
	// One day short of 17 years back: still 17.
	if !Underage(now.AddDate(-17, 0, -364), now) {
		t.Errorf("17 years old should be underage")
	}
	// 18th anniversary later this calendar year: still 17.
	if !Underage(now.AddDate(-18, 0, 1), now) {
		t.Errorf("18th birthday tomorrow should be underage")
	}
	if !Underage(time.Date(2008, time.December, 1, 0, 0, 0, 0, time.UTC), now) {
		t.Errorf("18th birthday in December should still be underage in June")
	}
	// Comfortably adult.
	if Underage(time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC), now) {
		t.Errorf("1990 birth should be adult")
	}
}
