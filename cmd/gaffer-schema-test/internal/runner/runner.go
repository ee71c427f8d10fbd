package runner

import (
	"io"
	"path/filepath"

	"github.com/gchq/gaffer-experimental-sub000/internal/reader"
	"github.com/pkg/errors"
)

type Runner struct {
	Context *RunnerContext
}

// Result pairs a test with the messages its document actually produced.
type Result struct {
	Spec   TestSpec
	Actual []string
}

func (r Result) Passed() bool {
	if len(r.Actual) != len(r.Spec.Expected) {
		return false
	}

	for i, message := range r.Actual {
		if message != r.Spec.Expected[i] {
			return false
		}
	}

	return true
}

// Run reads test specs from testsFile and runs them in order. It returns the
// results of the tests that ran, stopping early after a failure when the
// context asks for it.
func (v *Runner) Run(testsFile io.Reader) ([]Result, error) {
	testSpecs, err := ReadTestSpecs(testsFile)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, testSpec := range testSpecs {
		result, err := v.runTest(testSpec)
		if err != nil {
			return results, errors.Wrapf(err, "test %q", testSpec.Name)
		}

		v.Context.Logger.Debug("ran schema test", "name", testSpec.Name, "kind", testSpec.Kind, "passed", result.Passed())
		results = append(results, result)

		if !result.Passed() && v.Context.StopOnFailure {
			break
		}
	}

	return results, nil
}

func (v *Runner) runTest(testSpec TestSpec) (Result, error) {
	raw, err := v.input(testSpec)
	if err != nil {
		return Result{}, err
	}

	notifications, err := v.Context.Validator.Validate(testSpec.Kind, raw)
	if err != nil {
		return Result{}, err
	}

	return Result{Spec: testSpec, Actual: notifications.Messages()}, nil
}

func (v *Runner) input(testSpec TestSpec) (string, error) {
	if testSpec.Input != nil {
		return *testSpec.Input, nil
	}

	path := testSpec.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.Context.BaseDir, path)
	}

	return reader.ReadDocument(path)
}
