package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatal("hash must never equal the plaintext")
	}

	if !CheckPassword(hash, "s3cret-pw") {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword(hash, "wrong-pw") {
		t.Error("CheckPassword should reject a wrong password")
	}
	if CheckPassword("not-a-hash", "s3cret-pw") {
		t.Error("CheckPassword should reject a malformed hash")
	}
}
