package models

import "time"

// FeatureSwitch is one admin-managed feature flag
type FeatureSwitch struct {
	Key       string    `json:"key"`
	Enabled   bool      `json:"enabled"`
	UpdatedBy *int      `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateFeatureSwitchRequest is the payload for the admin flag update
type UpdateFeatureSwitchRequest struct {
	Enabled bool `json:"enabled"`
}

// Served when the store is unreachable so the client never hard-fails
var DefaultFeatureSwitches = map[string]bool{
	"registration_enabled": true,
	"invitations_enabled":  true,
	"help_posts_enabled":   true,
	"maintenance_mode":     false,
}
