package main

import (
	"io"
	"os"
	"time"

	hero "github.com/alnah/go-hero"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Rasterizer hero.Rasterizer // nil = headless Chrome when --png is set
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
