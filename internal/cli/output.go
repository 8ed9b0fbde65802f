package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"multiselect/internal/domain"
)

type jsonItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Key   string `json:"key"`
}

// writeResult prints the submitted items, one value per line or as a JSON array
func writeResult(w io.Writer, items domain.ItemList, asJSON bool) error {
	if asJSON {
		out := make([]jsonItem, 0, len(items))
		for _, item := range items {
			out = append(out, jsonItem{Label: item.Label, Value: item.Value, Key: item.ID()})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.Value); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}
