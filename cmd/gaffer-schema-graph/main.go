package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/gchq/gaffer-experimental-sub000/internal/reader"
	"github.com/gchq/gaffer-experimental-sub000/validation"
	"github.com/pkg/errors"
)

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	app := kingpin.New("gaffer-schema-graph", "gaffer-schema-graph prints the entities and edges of an elements schema as a Graphviz digraph.").Version(version)
	elementsFile := app.Arg("elements-file", "The elements schema to read, - for stdin.").Default("elements.json").String()
	useJSONSchema := app.Flag("jsonschema", "Also check the schema against the bundled JSON Schema.").Bool()

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	raw, err := reader.ReadDocument(*elementsFile)
	if err != nil {
		return err
	}

	return run(raw, *useJSONSchema, os.Stdout)
}

func run(raw string, useJSONSchema bool, w io.Writer) error {
	validator, err := validation.NewValidator(useJSONSchema)
	if err != nil {
		return errors.Wrap(err, "schema")
	}

	result := validator.ValidateElements(raw)
	if !result.Notifications.IsEmpty() {
		return errors.Wrap(result.Notifications.Err(), "invalid elements schema")
	}

	display(w, buildGraph(result))
	return nil
}
