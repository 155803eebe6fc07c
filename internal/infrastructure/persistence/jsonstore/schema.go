package jsonstore

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// SettingsSchema returns the JSON Schema of the settings document.
func SettingsSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&entity.Settings{})
	schema.Title = "gekko settings"
	return json.MarshalIndent(schema, "", "  ")
}
