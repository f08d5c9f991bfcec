package services

import (
	"os"
	"testing"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	os.Exit(m.Run())
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	return claims
}

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["user_id"] != "user-123" {
		t.Errorf("expected user_id claim user-123, got %v", claims["user_id"])
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("expected issuer %q, got %v", TokenIssuer, claims["iss"])
	}
	if _, hasType := claims["type"]; hasType {
		t.Error("access token should not carry a type claim")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	refreshToken, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	userID, err := ValidateRefreshToken(refreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken rejected its own token: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestValidateRefreshTokenRejections(t *testing.T) {
	t.Run("AccessTokenRejected", func(t *testing.T) {
		accessToken, err := GenerateToken("user-123")
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}
		if _, err := ValidateRefreshToken(accessToken); err == nil {
			t.Error("access token accepted as refresh token")
		}
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		if _, err := ValidateRefreshToken("not.a.token"); err == nil {
			t.Error("malformed token accepted")
		}
	})

	t.Run("WrongKeyRejected", func(t *testing.T) {
		claims := jwt.MapClaims{"user_id": "user-123", "type": "refresh"}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("some-other-key"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if _, err := ValidateRefreshToken(signed); err == nil {
			t.Error("token signed with the wrong key accepted")
		}
	})
}
