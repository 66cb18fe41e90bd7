package render

import (
	"encoding/json"
	"io"
)

// JSONRenderer marshals any result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
