package main

import (
	"fmt"
	"os/exec"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

// tool is one executable the workflow expects on PATH
type tool struct {
	name     string
	args     []string
	required bool
	install  string
}

var tools = []tool{
	{name: "go", args: []string{"version"}, required: true, install: "https://go.dev/dl/"},
	{name: "make", args: []string{"--version"}, required: true, install: "install via package manager (e.g., sudo apt install make)"},
	{name: "golangci-lint", args: []string{"--version"}, install: "go install github.com/golangci/golangci-lint/cmd/golangci-lint@v1.64.8"},
	{name: "benchstat", install: "go install golang.org/x/perf/cmd/benchstat@latest"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, t := range tools {
		if _, err := exec.LookPath(t.name); err != nil {
			if t.required {
				PrintError("%s not found (%s)", t.name, t.install)
				missing++
			} else {
				PrintWarning("%s not found, optional (%s)", t.name, t.install)
			}
			continue
		}

		version := "installed"
		if len(t.args) > 0 {
			if out, err := getCommandOutput(t.name, t.args...); err == nil {
				version = firstLine(out)
			}
		}
		PrintSuccess("%s: %s", t.name, version)
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete!")
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
