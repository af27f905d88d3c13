package ui

import (
	"io"

	"github.com/noborus/ov/oviewer"
)

// RunPager shows r in the ov pager and blocks until the user quits it.
// The pager takes over the terminal for the duration.
func RunPager(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
