package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		hashed, err := HashPassword("secure#password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if !strings.Contains(hashed, "$") {
			t.Error("stored password missing salt separator")
		}

		ok, err := VerifyPassword(hashed, "secure#password123")
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if !ok {
			t.Error("correct password rejected")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hashed, err := HashPassword("secure#password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		ok, err := VerifyPassword(hashed, "wrong#password123")
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if ok {
			t.Error("wrong password accepted")
		}
	})

	t.Run("WeakPasswordRejected", func(t *testing.T) {
		weak := []string{"short", "nodigits!", "nospecial1", "a1!"}
		for _, password := range weak {
			if _, err := HashPassword(password); err == nil {
				t.Errorf("weak password %q accepted", password)
			}
		}
	})

	t.Run("SaltIsRandom", func(t *testing.T) {
		first, err := HashPassword("secure#password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		second, err := HashPassword("secure#password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if first == second {
			t.Error("two hashes of the same password are identical")
		}
	})
}

func TestVerifyPasswordMalformedStored(t *testing.T) {
	for _, stored := range []string{"", "nodollar", "a$b$c"} {
		if _, err := VerifyPassword(stored, "secure#password123"); err == nil {
			t.Errorf("malformed stored password %q did not error", stored)
		}
	}
}
