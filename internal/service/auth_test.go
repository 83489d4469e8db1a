package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		input    string
		expected bool
	}{
		{name: "correct password", password: "secret", input: "secret", expected: true},
		{name: "wrong password", password: "secret", input: "wrong", expected: false},
		{name: "case-sensitive", password: "secret", input: "Secret", expected: false},
		{name: "empty input", password: "secret", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(tt.password)
			assert.Equal(t, tt.expected, service.CheckPassword(tt.input))
		})
	}
}

func TestAuthService_Authorize(t *testing.T) {
	service := NewAuthService("secret")

	assert.False(t, service.IsAuthorized(123))

	service.Authorize(123)

	assert.True(t, service.IsAuthorized(123))
	assert.False(t, service.IsAuthorized(456))
}
