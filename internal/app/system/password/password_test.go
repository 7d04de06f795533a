package password_test

import (
	"strings"
	"testing"

	"github.com/harmonyhealth/harmony/internal/app/system/password"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := password.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !password.Verify("s3cret-pass", digest) {
		t.Error("Verify rejected the correct password")
	}
	if password.Verify("wrong-pass", digest) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := password.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	b, err := password.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input should differ (salt)")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		if password.Verify("anything", digest) {
			t.Errorf("Verify(%q) should be false", digest)
		}
	}
}

func TestHashOverlongInput(t *testing.T) {
	if _, err := password.Hash(strings.Repeat("x", 100)); err == nil {
		t.Error("expected an error for input beyond bcrypt's length bound")
	}
}
