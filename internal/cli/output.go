package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"household/internal/config"
)

// writeResult prints text as is, or v as indented JSON.
func writeResult(w io.Writer, format, text string, v any) error {
	if format == config.FormatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
