package main

import (
	"io"

	"github.com/gchq/gaffer-experimental-sub000/cmd/gaffer-schema-test/internal/runner"
	"github.com/gchq/gaffer-experimental-sub000/internal/config"
	"github.com/gchq/gaffer-experimental-sub000/internal/logging"
	"github.com/gchq/gaffer-experimental-sub000/internal/output"
	"github.com/gchq/gaffer-experimental-sub000/validation"
	"github.com/pkg/errors"
)

func test(testsFile io.Reader, baseDir string, cfg *config.Config, stdout, stderr io.Writer) error {
	validator, err := validation.NewValidator(cfg.Validate.JSONSchema)
	if err != nil {
		return errors.Wrap(err, "schema")
	}

	ctx := runner.NewRunnerContext(validator, baseDir)
	ctx.StopOnFailure = cfg.Test.StopOnFailure
	ctx.Logger = logging.New(stderr, cfg.Test.Verbose)
	testRunner := &runner.Runner{Context: ctx}

	var results []runner.Result
	err = output.WithProgress(stderr, cfg.Validate.Progress, "Running schema tests", func() (err error) {
		results, err = testRunner.Run(testsFile)
		return err
	})
	if err != nil {
		return err
	}

	return report(output.NewPrinter(stdout, cfg.Validate.Color), results)
}

func report(printer *output.Printer, results []runner.Result) error {
	failed := 0
	for _, result := range results {
		if result.Passed() {
			printer.Success("PASS %s", result.Spec.Name)
			continue
		}

		failed++
		printer.Failure("FAIL %s", result.Spec.Name)
		printMessages(printer, "expected", result.Spec.Expected)
		printMessages(printer, "actual", result.Actual)
	}

	printer.Printf("\n%d tests, %d passed, %d failed\n", len(results), len(results)-failed, failed)

	if failed > 0 {
		return errors.Errorf("%d of %d schema tests failed", failed, len(results))
	}

	return nil
}

func printMessages(printer *output.Printer, label string, messages []string) {
	if len(messages) == 0 {
		printer.Printf("\t%s: no errors\n", label)
		return
	}

	printer.Printf("\t%s:\n", label)
	for _, message := range messages {
		printer.Printf("\t\t%s\n", message)
	}
}
