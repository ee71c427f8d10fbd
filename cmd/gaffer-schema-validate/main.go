package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/gchq/gaffer-experimental-sub000/internal/config"
	"github.com/gchq/gaffer-experimental-sub000/internal/logging"
	"github.com/gchq/gaffer-experimental-sub000/internal/output"
	"github.com/gchq/gaffer-experimental-sub000/internal/reader"
	"github.com/gchq/gaffer-experimental-sub000/validation"
	"github.com/pkg/errors"
)

const version = "0.1.0"

var errInvalid = errors.New("schema validation failed")

var documentKinds = []string{"elements", "types"}

var documentTitles = map[string]string{
	"elements": "Elements",
	"types":    "Types",
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

type options struct {
	elementsFile string
	typesFile    string
	configFile   string
	jsonSchema   bool
	stopOnError  bool
	noColor      bool
	progress     bool
	verbose      bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	app := kingpin.New("gaffer-schema-validate", "gaffer-schema-validate is a validator for Gaffer elements and types schemas.").Version(version)
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')

	app.Arg("elements-file", "The elements schema to validate, - for stdin.").StringVar(&opts.elementsFile)
	app.Flag("types", "The types schema to validate, - for stdin.").Short('t').StringVar(&opts.typesFile)
	app.Flag("config", "A TOML configuration file.").Envar(config.EnvVar).StringVar(&opts.configFile)
	app.Flag("jsonschema", "Also check valid documents against the bundled JSON Schemas.").BoolVar(&opts.jsonSchema)
	app.Flag("stop-on-error", "Stop validation after the first invalid document.").BoolVar(&opts.stopOnError)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	app.Flag("progress", "Show progress while validating.").BoolVar(&opts.progress)
	app.Flag("verbose", "Log diagnostic messages to stderr.").BoolVar(&opts.verbose)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	if opts.elementsFile == "" && opts.typesFile == "" {
		return nil, errors.New("no elements or types schema given")
	}

	if opts.elementsFile == reader.Stdin && opts.typesFile == reader.Stdin {
		return nil, errors.New("only one schema can be read from stdin")
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.configFile)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	logger := logging.New(stderr, opts.verbose)

	documents, err := reader.ReadDocuments(documentKinds, map[string]string{
		"elements": opts.elementsFile,
		"types":    opts.typesFile,
	})
	if err != nil {
		return err
	}

	validator, err := validation.NewValidator(cfg.Validate.JSONSchema || opts.jsonSchema)
	if err != nil {
		return errors.Wrap(err, "schema")
	}

	printer := output.NewPrinter(stdout, cfg.Validate.Color && !opts.noColor)
	stopOnError := cfg.Validate.StopOnError || opts.stopOnError
	progress := cfg.Validate.Progress || opts.progress

	allOk := true
	for _, document := range documents {
		var notifications *validation.Notifications

		err := output.WithProgress(stderr, progress, fmt.Sprintf("Validating %s", document.Path), func() (err error) {
			notifications, err = validator.Validate(document.Kind, document.Text)
			return err
		})
		if err != nil {
			return err
		}

		logger.Debug("validated schema", "kind", document.Kind, "path", document.Path, "errors", notifications.Len())

		printer.Header("%s", document.Path)
		printer.Report(documentTitles[document.Kind], notifications)

		if !notifications.IsEmpty() {
			allOk = false

			if stopOnError {
				break
			}
		}
	}

	if !allOk {
		return errInvalid
	}

	return nil
}
