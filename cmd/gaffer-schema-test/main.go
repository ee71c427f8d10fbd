package main

import (
	"fmt"
	"os"
	"path/filepath"

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
	if err := parseArgs(os.Args[1:]); err != nil {
		return err
	}

	defer testsFile.Close()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "config")
	}

	return test(testsFile, filepath.Dir(testsFile.Name()), cfg, os.Stdout, os.Stderr)
}
