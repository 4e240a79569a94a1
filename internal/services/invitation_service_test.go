package services

import (
	"strings"
	"testing"
	"time"

	"community-backend/internal/models"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode failed: %v", err)
		}
		if len(code) != codeLength {
			t.Fatalf("code length %d, want %d", len(code), codeLength)
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Errorf("code %s contains %q outside the alphabet", code, c)
			}
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Errorf("only %d unique codes in 50 draws", len(seen))
	}
}

func TestInvitationEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		invitation models.Invitation
		want       string
	}{
		{
			name:       "pending before expiry",
			invitation: models.Invitation{Status: "pending", ExpiresAt: now.Add(time.Hour)},
			want:       "pending",
		},
		{
			name:       "pending past expiry reads expired",
			invitation: models.Invitation{Status: "pending", ExpiresAt: now.Add(-time.Hour)},
			want:       "expired",
		},
		{
			name:       "used stays used even past expiry",
			invitation: models.Invitation{Status: "used", ExpiresAt: now.Add(-time.Hour)},
			want:       "used",
		},
		{
			name:       "expired stays expired",
			invitation: models.Invitation{Status: "expired", ExpiresAt: now.Add(time.Hour)},
			want:       "expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.invitation.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus = %s, want %s", got, tt.want)
			}
		})
	}
}
