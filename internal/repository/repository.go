// Package repository : accès typé par entité aux collections MongoDB.
// Remplace l'accès générique "create(collection, doc)" par des dépôts
// vérifiés à la compilation, un par entité.
package repository

import "errors"

// Noms des collections MongoDB.
const (
	CollProducts  = "product"
	CollCarts     = "cart"
	CollOrders    = "order"
	CollReminders = "reminders"
	CollWebhooks  = "webhook_log"
)

// ErrNotFound : document absent (ou identifiant mal formé).
var ErrNotFound = errors.New("document introuvable")
