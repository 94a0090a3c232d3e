package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"userAgent": "",
		},
		"dispatch": map[string]any{
			"defaultRadiusMiles": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_USERAGENT", want: "geocoding.userAgent"},
		{envKey: "DISPATCH_DEFAULTRADIUSMILES", want: "dispatch.defaultRadiusMiles"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDefaultPlans(t *testing.T) {
	plans := DefaultPlans()

	free, ok := plans["free"]
	if !ok {
		t.Fatal("default catalog is missing the free tier")
	}
	if free.MaxAreaBlastsPerMonth != 0 {
		t.Fatalf("free tier should not allow area blasts, got %d per month", free.MaxAreaBlastsPerMonth)
	}

	enterprise, ok := plans["enterprise"]
	if !ok {
		t.Fatal("default catalog is missing the enterprise tier")
	}
	if enterprise.MaxFollowerNotificationsPerDay != 0 {
		t.Fatalf("enterprise daily cap should be unlimited, got %d", enterprise.MaxFollowerNotificationsPerDay)
	}
}
