// Package migrations embeds the SQL migrations of every service, one directory per service.
package migrations

import "embed"

//go:embed postgres
var FS embed.FS

const (
	ServiceAuth      = "auth"
	ServiceCatalog   = "catalog"
	ServiceBooking   = "booking"
	ServiceInventory = "inventory"
)

var Services = []string{ServiceAuth, ServiceCatalog, ServiceBooking, ServiceInventory}

// Dir returns the embedded directory holding a service's migrations.
func Dir(service string) string {
	return "postgres/" + service
}
