//go:build mage

// Package main provides build targets for the boggle project using Mage.
//
// Usage:
//
//	mage build    Compile the boggle binary to bin/
//	mage test     Run all tests
//	mage bench    Run the solver benchmarks
//	mage lint     Run go vet and golangci-lint
//	mage install  Install boggle to GOPATH/bin
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "boggle"
	binaryDir  = "bin"
	cmdDir     = "./cmd/boggle"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the boggle binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the benchmarks of the root package.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Install installs boggle to GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
