package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "catalogo-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, "ops", ScopeWrite, testIssuer, 5)
	require.NoError(t, err)

	claims, err := Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, ScopeWrite, claims.Scope)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_Rejects(t *testing.T) {
	good, err := Generate(testSecret, "ops", ScopeWrite, testIssuer, 5)
	require.NoError(t, err)
	otherIssuer, err := Generate(testSecret, "ops", ScopeWrite, "otro", 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "firma incorrecta", secret: "otro-secret", token: good},
		{name: "emisor distinto", secret: testSecret, token: otherIssuer},
		{name: "basura", secret: testSecret, token: "no.es.jwt"},
		{name: "secret vacío", secret: "", token: good},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.secret, testIssuer, tc.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := Generate("", "ops", ScopeWrite, testIssuer, 5)
	assert.Error(t, err)

	_, err = Generate(testSecret, "ops", ScopeWrite, testIssuer, 0)
	assert.Error(t, err)
}
