//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Builds all main packages under ./cmd/...
func Build() error {
	return sh.RunV(mg.GoCmd(), "build", fmt.Sprintf("-v=%t", mg.Verbose()), "-o", "bin/", "./cmd/...")
}

// Runs all tests
func Test() error {
	return sh.RunV(mg.GoCmd(), "test", "-v", "-race", "./...")
}

// Builds linelog and prints a sample of every level, using both clocks.
func Demo() error {
	mg.Deps(Build)

	if err := sh.RunWithV(map[string]string{
		"LOGLEVEL": "trace",
	}, "bin/linelog", "demo", "--color=always"); err != nil {
		return err
	}
	return sh.RunWithV(map[string]string{
		"LOGLEVEL": "trace",
		"LOGTZ":    "0",
	}, "bin/linelog", "demo", "--clock=calendar", "--color=always", "--workers=0")
}
