package transport_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/hubgraph/transport"
)

func TestRetryPolicyDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		policy   transport.RetryPolicy
		attempt  int
		expected time.Duration
	}{
		{name: "should wait 2s on the first retry", policy: transport.DefaultRetryPolicy(), attempt: 1, expected: 2 * time.Second},
		{name: "should wait 4s on the second retry", policy: transport.DefaultRetryPolicy(), attempt: 2, expected: 4 * time.Second},
		{name: "should wait 8s on the third retry", policy: transport.DefaultRetryPolicy(), attempt: 3, expected: 8 * time.Second},
		{
			name:     "should honour a custom base and unit",
			policy:   transport.RetryPolicy{Base: 3, Unit: time.Millisecond},
			attempt:  2,
			expected: 9 * time.Millisecond,
		},
		{
			name:     "should saturate instead of overflowing on late attempts",
			policy:   transport.DefaultRetryPolicy(),
			attempt:  34,
			expected: time.Duration(math.MaxInt64),
		},
		{
			name:     "should saturate once the power is infinite",
			policy:   transport.DefaultRetryPolicy(),
			attempt:  2000,
			expected: time.Duration(math.MaxInt64),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			delay := tt.policy.Delay(tt.attempt)

			// then
			assert.Equal(t, tt.expected, delay)
		})
	}
}

func TestParseVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected transport.Verbosity
		wantErr  bool
	}{
		{input: "", expected: transport.VerbosityNone},
		{input: "warn", expected: transport.VerbosityWarning},
		{input: "INFO", expected: transport.VerbosityInfo},
		{input: "debug", expected: transport.VerbosityDebug},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.input, func(t *testing.T) {
			t.Parallel()

			// when
			v, err := transport.ParseVerbosity(tt.input)

			// then
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
