// Command launcher is the CLI shell around the launch plan orchestrator: a
// thin layer that parses flags and calls into internal/orchestrator,
// internal/plan, and internal/config. Per spec.md §1 the argument parser
// itself is out of scope for the core.
package main

import "github.com/LerianStudio/launchplan/cmd/launcher/cmd"

func main() {
	cmd.Execute()
}
