package runner

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TestSpec is a single schema test case: a document and the messages its
// validation must produce, in order. No expected messages means the document
// must be valid.
type TestSpec struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Input    *string  `yaml:"input"`
	File     string   `yaml:"file"`
	Expected []string `yaml:"expected"`
}

func ReadTestSpecs(r io.Reader) ([]TestSpec, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var testSpecs []TestSpec
	if err := yaml.Unmarshal(content, &testSpecs); err != nil {
		return nil, errors.Wrap(err, "decode test specs")
	}

	for i, testSpec := range testSpecs {
		if testSpec.Name == "" {
			return nil, errors.Errorf("test %d has no name", i+1)
		}

		if testSpec.Kind == "" {
			return nil, errors.Errorf("test %q has no kind", testSpec.Name)
		}

		if (testSpec.Input == nil) == (testSpec.File == "") {
			return nil, errors.Errorf("test %q needs exactly one of input or file", testSpec.Name)
		}
	}

	return testSpecs, nil
}
