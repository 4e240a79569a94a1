package services

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Phone digit lengths per country code. Codes not listed accept 7-15 digits
var phoneLengths = map[string]int{
	"+91": 10,
	"+65": 8,
	"+94": 9,
	"+60": 9,
}

// ValidateDateOfBirth enforces the membership age rules against "now".
// Today's date is flagged distinctly from the general future-date case
func ValidateDateOfBirth(dob string, now time.Time) error {
	date, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return errors.New("date of birth must be in YYYY-MM-DD format")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if date.Equal(today) {
		return errors.New("date of birth cannot be today's date")
	}
	if date.After(today) {
		return errors.New("date of birth cannot be in the future")
	}

	if Age(date, today) < 18 {
		return errors.New("member must be at least 18 years old")
	}
	return nil
}

// ValidateChildDateOfBirth allows minors but still rejects today/future dates
func ValidateChildDateOfBirth(dob string, now time.Time) error {
	date, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return errors.New("date of birth must be in YYYY-MM-DD format")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if date.Equal(today) {
		return errors.New("date of birth cannot be today's date")
	}
	if date.After(today) {
		return errors.New("date of birth cannot be in the future")
	}
	return nil
}

// Age computes whole years between birth date and reference date
func Age(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	return years
}

// ValidateEmail checks basic email shape
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePhone checks digit-only content and per-country length
func ValidatePhone(phone, countryCode string) error {
	if !digitsPattern.MatchString(phone) {
		return errors.New("phone number must contain only digits")
	}

	if want, ok := phoneLengths[countryCode]; ok {
		if len(phone) != want {
			return errors.New("phone number for " + countryCode + " must be exactly " + strconv.Itoa(want) + " digits")
		}
		return nil
	}

	if len(phone) < 7 || len(phone) > 15 {
		return errors.New("phone number must be 7 to 15 digits")
	}
	return nil
}

// ValidatePinCode requires exactly 6 digits
func ValidatePinCode(pin string) error {
	if len(pin) != 6 || !digitsPattern.MatchString(pin) {
		return errors.New("PIN code must be exactly 6 digits")
	}
	return nil
}
