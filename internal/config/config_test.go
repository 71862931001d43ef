package config

import (
	"reflect"
	"testing"
)

func TestParseOrigins(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"http://a.test, http://b.test", []string{"http://a.test", "http://b.test"}},
		{" , http://a.test, ", []string{"http://a.test"}},
	}
	for _, tc := range cases {
		got := parseOrigins(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseOrigins(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "25")
	if got := getEnvInt("TEST_INT", 10); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}

	t.Setenv("TEST_INT", "not-a-number")
	if got := getEnvInt("TEST_INT", 10); got != 10 {
		t.Errorf("expected fallback 10, got %d", got)
	}

	if got := getEnvInt("TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("expected fallback 7, got %d", got)
	}
}

func TestRevokedTokenKey(t *testing.T) {
	key := CacheKey.RevokedTokenKey("abc-123")
	if key != "revoked:abc-123" {
		t.Errorf("unexpected key %q", key)
	}
}
