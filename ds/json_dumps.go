package ds

import (
	"fmt"

	"github.com/goccy/go-json"
)

func DumpJSON[T any](t T) string {
	tBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
