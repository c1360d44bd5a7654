package middleware

import (
	"testing"
	"time"

	"bazario_back_end/internal/models"
	"bazario_back_end/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestParseTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "u42", Email: "a@x.com", IsAdmin: true}

	token, err := utils.GenerateJWT(user, utils.LoginTokenTTL, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u42" || claims.Email != "a@x.com" || !claims.IsAdmin {
		t.Errorf("claims = %+v, want {u42 a@x.com true}", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(models.User{ID: "u1"}, utils.LoginTokenTTL, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("ParseToken should reject a token signed with a different secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := utils.GenerateJWT(models.User{ID: "u1"}, -time.Minute, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("ParseToken should reject an expired token")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(raw, testSecret); err == nil {
			t.Errorf("ParseToken(%q) should fail", raw)
		}
	}
}

func TestParseTokenMissingUserID(t *testing.T) {
	// Token valide mais sans claim id : refusé.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := ParseToken(signed, testSecret); err == nil {
		t.Error("ParseToken should reject a token without an id claim")
	}
}
