package patch

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Params holds the parsed parameters of one patch node.
type Params struct {
	ID   string
	Type string
	Raw  map[string]any
}

// Decode copies the raw parameters onto target, a pointer to a struct with
// mapstructure tags. Fields absent from the params keep their value, so
// target can be pre-filled with defaults. Unknown keys are an error.
func (p Params) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("patch: node %q: %w", p.ID, err)
	}

	if err := dec.Decode(p.Raw); err != nil {
		return fmt.Errorf("patch: node %q params: %w", p.ID, err)
	}

	return nil
}
