package main

import (
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/gchq/gaffer-experimental-sub000/internal/config"
)

var app = kingpin.New(
	"gaffer-schema-test",
	"gaffer-schema-test is a test runner for Gaffer schema validation.",
).Version(version)

var (
	testsFile     *os.File
	configFile    string
	jsonSchema    bool
	stopOnFailure bool
	noColor       bool
	progress      bool
	verbose       bool
)

func init() {
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.HelpFlag.Hidden()

	app.Arg("tests-file", "The test specification file.").Default("tests.yaml").FileVar(&testsFile)
	app.Flag("config", "A TOML configuration file.").Envar(config.EnvVar).StringVar(&configFile)
	app.Flag("jsonschema", "Also check valid documents against the bundled JSON Schemas.").BoolVar(&jsonSchema)
	app.Flag("stop-on-failure", "Stop after the first failing test.").BoolVar(&stopOnFailure)
	app.Flag("no-color", "Disable colored output.").BoolVar(&noColor)
	app.Flag("progress", "Show progress while running tests.").BoolVar(&progress)
	app.Flag("verbose", "Log diagnostic messages to stderr.").BoolVar(&verbose)
}

func parseArgs(args []string) (err error) {
	if _, err := app.Parse(args); err != nil {
		return err
	}

	return nil
}

// loadConfig reads the config file and applies the command line flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return nil, err
	}

	cfg.Validate.JSONSchema = cfg.Validate.JSONSchema || jsonSchema
	cfg.Validate.Color = cfg.Validate.Color && !noColor
	cfg.Validate.Progress = cfg.Validate.Progress || progress
	cfg.Test.StopOnFailure = cfg.Test.StopOnFailure || stopOnFailure
	cfg.Test.Verbose = cfg.Test.Verbose || verbose
	return cfg, nil
}
