package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderID génère l'identifiant humain d'une commande : horodatage UTC
// lisible et triable, suffixé de 6 hex aléatoires pour que deux checkouts
// dans la même seconde ne collisionnent pas.
func NewOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return now.UTC().Format("20060102150405") + suffix
}
