package main

import (
	"fmt"
	"os"

	"github.com/alnah/go-docpdf/internal/config"
)

// defaultConfigName is the file written by the init command.
const defaultConfigName = "docpdf.yaml"

// runInit writes a starter config file for a new project. Refuses to
// replace an existing file so a typo cannot wipe a tuned config.
func runInit(args []string, deps *Dependencies) error {
	path := defaultConfigName
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	if err := config.Starter().Save(path); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
