package services

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestValidateDateOfBirth(t *testing.T) {
	tests := []struct {
		name    string
		dob     string
		wantErr string
	}{
		{"adult member", "1990-06-01", ""},
		{"turns 18 exactly today", "2008-03-15", ""},
		{"one day short of 18", "2008-03-16", "at least 18"},
		{"today is flagged distinctly", "2026-03-15", "today"},
		{"future date", "2026-04-01", "future"},
		{"bad format", "15-03-1990", "YYYY-MM-DD"},
		{"empty", "", "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateOfBirth(tt.dob, testNow)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChildDateOfBirth(t *testing.T) {
	// Children have no minimum age, but today and future still fail
	if err := ValidateChildDateOfBirth("2025-12-01", testNow); err != nil {
		t.Errorf("infant DOB should be valid, got %v", err)
	}
	if err := ValidateChildDateOfBirth("2026-03-15", testNow); err == nil {
		t.Error("today's date should be rejected")
	}
	if err := ValidateChildDateOfBirth("2027-01-01", testNow); err == nil {
		t.Error("future date should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org", "x_1@sub.domain.in"}
	invalid := []string{"", "plain", "@nohost.com", "user@", "user@host", "user @host.com"}

	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		wantErr     bool
	}{
		{"india ten digits", "9876543210", "+91", false},
		{"india nine digits", "987654321", "+91", true},
		{"india eleven digits", "98765432101", "+91", true},
		{"singapore eight digits", "81234567", "+65", false},
		{"sri lanka nine digits", "712345678", "+94", false},
		{"malaysia nine digits", "123456789", "+60", false},
		{"unknown code in generic range", "1234567", "+44", false},
		{"unknown code too short", "123456", "+44", true},
		{"letters rejected", "98765abc10", "+91", true},
		{"empty rejected", "", "+91", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone, tt.countryCode)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q, %q) = %v, wantErr %v", tt.phone, tt.countryCode, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePinCode(t *testing.T) {
	if err := ValidatePinCode("628001"); err != nil {
		t.Errorf("valid PIN rejected: %v", err)
	}
	for _, pin := range []string{"", "12345", "1234567", "62800a"} {
		if err := ValidatePinCode(pin); err == nil {
			t.Errorf("ValidatePinCode(%q) = nil, want error", pin)
		}
	}
}

func TestAge(t *testing.T) {
	birth := time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC)

	if got := Age(birth, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)); got != 26 {
		t.Errorf("age on birthday = %d, want 26", got)
	}
	if got := Age(birth, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)); got != 25 {
		t.Errorf("age day before birthday = %d, want 25", got)
	}
}
