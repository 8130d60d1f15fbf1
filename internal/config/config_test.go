package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Fatalf("server addr: got %q", cfg.Server.Addr)
	}
	if cfg.Auth.Issuer != "wayfinder-api" || cfg.Auth.Audience != "wayfinder-client" {
		t.Fatalf("auth identity defaults: got %q / %q", cfg.Auth.Issuer, cfg.Auth.Audience)
	}
	if cfg.Auth.TokenTTLMinutes != 60 {
		t.Fatalf("token ttl: got %d", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Auth.SigningKey != "" || cfg.Auth.EncryptionKey != "" {
		t.Fatal("secrets must have no baked-in default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WAYFINDER_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("WAYFINDER_AUTH_SIGNINGKEY", "sign-secret")
	t.Setenv("WAYFINDER_AUTH_TOKENTTLMINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("server addr: got %q", cfg.Server.Addr)
	}
	if cfg.Auth.SigningKey != "sign-secret" {
		t.Fatalf("signing key: got %q", cfg.Auth.SigningKey)
	}
	if cfg.Auth.TokenTTLMinutes != 15 {
		t.Fatalf("token ttl: got %d", cfg.Auth.TokenTTLMinutes)
	}
}
