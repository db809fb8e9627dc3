// Package migrations embeds the schema for every supported database driver.
package migrations

import (
	"embed"
	"fmt"
)

//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS

// Dir returns the directory inside FS holding the migrations for driver.
func Dir(driver string) (string, error) {
	switch driver {
	case "pgx":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("no migrations for database driver %q", driver)
	}
}
