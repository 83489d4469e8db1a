package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "answer|2",
			expected: "answer|2",
		},
		{
			name:     "string with whitespace",
			input:    "  answer|2  ",
			expected: "answer|2",
		},
		{
			name:     "telegram data prefix is stripped",
			input:    "\fanswer|2",
			expected: "answer|2",
		},
		{
			name:     "string with unprintable characters",
			input:    "diff\x00|easy\x01",
			expected: "diff|easy",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitCallback(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedUnique  string
		expectedPayload string
	}{
		{
			name:            "unique with payload",
			input:           "answer|3",
			expectedUnique:  "answer",
			expectedPayload: "3",
		},
		{
			name:            "unique without payload",
			input:           "restart",
			expectedUnique:  "restart",
			expectedPayload: "",
		},
		{
			name:            "payload with separator",
			input:           "diff|failed|extra",
			expectedUnique:  "diff",
			expectedPayload: "failed|extra",
		},
		{
			name:            "empty input",
			input:           "",
			expectedUnique:  "",
			expectedPayload: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique, payload := splitCallback(tt.input)
			assert.Equal(t, tt.expectedUnique, unique)
			assert.Equal(t, tt.expectedPayload, payload)
		})
	}
}
