package ui

import (
	"fmt"
	"strings"

	"github.com/noborus/ov/oviewer"

	"multiselect/internal/ui/input"
	"multiselect/internal/ui/views"
)

// KeyReference renders the key reference for keys
func KeyReference(keys input.KeyMap) string {
	return views.RenderKeyReference(
		"multiselect keys",
		[]string{"Navigation", "Selection", "Program"},
		keys.FullHelp(),
	)
}

// ShowKeysInPager shows the key reference using ov pager
func ShowKeysInPager(keys input.KeyMap) error {
	reader := strings.NewReader(KeyReference(keys))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with the screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
