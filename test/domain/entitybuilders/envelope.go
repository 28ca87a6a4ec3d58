package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"gopkg.in/yaml.v3"
)

// Envelope renders payload under key as a YAML response body.
func Envelope(key string, payload any) string {
	out, err := yaml.Marshal(map[string]any{key: payload})
	if err != nil {
		panic(err)
	}
	return "---\n" + string(out)
}
