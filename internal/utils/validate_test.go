package utils

import (
	"strings"
	"testing"

	"bazario_back_end/internal/models"
)

func TestValidateStructReturnsAllViolations(t *testing.T) {
	// Deux champs absents + prix nul : les trois violations sont
	// rapportées en une seule passe.
	input := models.ProductInput{
		Name:  "Lamp",
		Image: "http://img/lamp.jpg",
	}

	violations := ValidateStruct(input)
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(violations), violations)
	}

	joined := strings.Join(violations, "; ")
	for _, field := range []string{"category", "price", "description"} {
		if !strings.Contains(joined, field) {
			t.Errorf("violations should mention %q, got %v", field, violations)
		}
	}
}

func TestValidateStructValidInput(t *testing.T) {
	input := models.ProductInput{
		Name:        "Lamp",
		Category:    "Home",
		Price:       49.9,
		Description: "A lamp",
		Image:       "http://img/lamp.jpg",
	}
	if violations := ValidateStruct(input); violations != nil {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestValidateStructAddress(t *testing.T) {
	addr := models.Address{City: "Pune"}
	violations := ValidateStruct(addr)
	if len(violations) != 6 {
		t.Errorf("expected 6 violations for an address with only a city, got %d: %v",
			len(violations), violations)
	}
}
