package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignValue_Roundtrip(t *testing.T) {
	signed := SignValue("topsecret", "some-token-value")

	value, ok := VerifySignedValue("topsecret", signed)
	require.True(t, ok)
	assert.Equal(t, "some-token-value", value)
}

func TestVerifySignedValue_Tampered(t *testing.T) {
	signed := SignValue("topsecret", "some-token-value")

	_, ok := VerifySignedValue("topsecret", "other-value"+signed[len("some-token-value"):])
	assert.False(t, ok, "changing the value must invalidate the signature")

	_, ok = VerifySignedValue("topsecret", signed[:len(signed)-1]+"x")
	assert.False(t, ok, "changing the signature must fail verification")
}

func TestVerifySignedValue_WrongSecret(t *testing.T) {
	signed := SignValue("topsecret", "some-token-value")
	_, ok := VerifySignedValue("differentsecret", signed)
	assert.False(t, ok)
}

func TestVerifySignedValue_Garbage(t *testing.T) {
	for _, bad := range []string{"", "nodot", ".leadingdot", "a."} {
		_, ok := VerifySignedValue("topsecret", bad)
		assert.False(t, ok, "input %q must not verify", bad)
	}
}
