package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hash un mot de passe avec bcrypt (coût par défaut).
// Le mot de passe en clair n'est jamais persisté.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compare un mot de passe au hash stocké.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
