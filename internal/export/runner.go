// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts final article Markdown into Word documents by
// piping it through the pandoc binary.
package export

import (
	"fmt"
	"io"
	"os/exec"
)

const binPandoc = "pandoc"

// Runner executes the external converter binary, piping stdin and stdout.
type Runner interface {
	// Name returns the converter binary name.
	Name() string

	// Available reports whether the binary exists on PATH and responds to
	// a version probe.
	Available() bool

	// Run executes the binary with the given arguments.
	Run(args []string, stdin io.Reader, stdout io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// binRunner implements Runner for a named binary.
type binRunner struct {
	bin  string
	exec executor
}

func (r *binRunner) Name() string { return r.bin }

func (r *binRunner) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "--version") == nil
}

func (r *binRunner) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	if err := r.exec.RunPiped(r.bin, args, stdin, stdout); err != nil {
		return fmt.Errorf("running %s: %w", r.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// DetectPandoc verifies pandoc is installed and operational. Returns an
// error if the binary is missing so commands can fail fast before any model
// calls are made.
func DetectPandoc() (Runner, error) {
	return detectPandoc(defaultExec)
}

func detectPandoc(exec executor) (Runner, error) {
	r := &binRunner{bin: binPandoc, exec: exec}
	if !r.Available() {
		return nil, fmt.Errorf("%s not found on PATH or not operational; install pandoc to enable document export", binPandoc)
	}
	return r, nil
}
