package util

import (
	"strings"
	"testing"
)

func TestHashSecret(t *testing.T) {
	secret := "MySecret123"

	hashed, err := HashSecret(secret)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.Contains(hashed, "$") {
		t.Error("hash should be salt$hash")
	}

	if _, err := HashSecret(""); err == nil {
		t.Error("empty secret should fail")
	}

	// same secret must hash differently (random salt)
	hashed2, _ := HashSecret(secret)
	if hashed == hashed2 {
		t.Error("same secret should produce different hashes")
	}
}

func TestCheckSecret(t *testing.T) {
	secret := "TestPass456"
	hashed, _ := HashSecret(secret)

	if !CheckSecret(secret, hashed) {
		t.Error("correct secret rejected")
	}
	if CheckSecret("WrongPass", hashed) {
		t.Error("wrong secret accepted")
	}
	if CheckSecret("", hashed) {
		t.Error("empty secret accepted")
	}
	if CheckSecret(secret, "") {
		t.Error("empty hash accepted")
	}
	if CheckSecret(secret, "invalid-format") {
		t.Error("malformed hash accepted")
	}
}
