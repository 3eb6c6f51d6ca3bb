//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs the linters.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}
