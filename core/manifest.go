package dialog

import (
	"github.com/invopop/jsonschema"
)

// IntentSpec describes one intent a skill understands: its name and,
// when it takes slots, the schema of the slot payload. External
// recognizers are configured from these.
type IntentSpec struct {
	Name  string             `json:"name"`
	Slots *jsonschema.Schema `json:"slots,omitempty"`
}

// Manifest is the full intent surface of one skill.
type Manifest struct {
	SkillID string       `json:"skillId"`
	Intents []IntentSpec `json:"intents"`
}

// ManifestProvider is implemented by skills that publish their intent
// surface.
type ManifestProvider interface {
	Manifest() Manifest
}

// SlotSchema reflects a slot struct into its JSON schema.
func SlotSchema(slots any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(slots)
}
