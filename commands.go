package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/marsrover/rover/render"
	"github.com/wricardo/mcp-training/marsrover/rover/script"
	"github.com/wricardo/mcp-training/marsrover/validate"
)

var (
	lineColor   = color.New(color.FgCyan)
	failColor   = color.New(color.FgRed, color.Bold)
	headerColor = color.New(color.Bold)
)

type scriptOptions struct {
	quiet bool
	json  bool
}

// runScript parses and executes a mission script, printing every batch as
// it runs. With json set only the final report is printed.
func runScript(ctx context.Context, path string, out io.Writer, opts scriptOptions) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	mission, err := script.ParseNamed(path, string(src))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var observe script.Observer
	if !opts.json {
		observe = func(r script.Result) {
			lineColor.Fprintf(out, "line %d: ", r.Line)
			if r.Outcome == nil {
				fmt.Fprintf(out, "%s %s\n", r.Kind, r.Message)
				return
			}
			render.PrintOutcome(out, *r.Outcome)
			if !opts.quiet && r.Planet != nil {
				fmt.Fprint(out, render.ColorGrid(r.Planet, r.Pose))
			}
		}
	}

	report, runErr := script.Run(ctx, mission, observe)

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if report != nil {
			if err := enc.Encode(report); err != nil {
				return err
			}
		}
	} else if report != nil {
		headerColor.Fprintf(out, "\nFinal: %s facing %s, %d commands applied, %d expectations checked\n",
			report.Final.Position, report.Final.Orientation, report.TotalApplied, report.Expectations)
	}

	if runErr != nil {
		if !opts.json {
			failColor.Fprintf(out, "FAILED: %v\n", runErr)
		}
		return cli.Exit(runErr.Error(), 1)
	}
	return nil
}

// validateConfigs validates files, or every mission file in configDir when
// no files are given.
func validateConfigs(files []string, configDir string, out io.Writer) error {
	if len(files) == 0 {
		found, err := validate.ConfigFiles(configDir)
		if err != nil {
			return fmt.Errorf("error finding config files: %w", err)
		}
		files = found
	}
	if len(files) == 0 {
		return cli.Exit(fmt.Sprintf("no mission files in %s", configDir), 1)
	}

	results := make([]validate.ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validate.ValidateConfig(file))
	}

	if !validate.Report(out, results) {
		return cli.Exit("", 1)
	}
	return nil
}
