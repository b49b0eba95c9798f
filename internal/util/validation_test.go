package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"plain address", "user@example.com", true},
		{"subdomain", "user@mail.example.co.uk", true},
		{"plus tag", "user+tag@example.com", true},
		{"empty", "", false},
		{"missing at", "userexample.com", false},
		{"missing domain dot", "user@example", false},
		{"embedded space", "user name@example.com", false},
		{"double at", "user@@example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidEmail(tc.email))
		})
	}
}
