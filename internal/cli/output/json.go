package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes indented JSON. Capability sets and strategies encode
// as their names through encoding.TextMarshaler.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(w io.Writer, data any) error {
	return writeJSON(w, data)
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
