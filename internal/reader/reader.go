package reader

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the path that reads a document from standard input.
const Stdin = "-"

// Document is the raw text of a schema document and where it came from.
type Document struct {
	Kind string
	Path string
	Text string
}

// ReadDocument reads the schema document at path. An empty path is an absent
// document and yields empty text.
func ReadDocument(path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case Stdin:
		return Read(os.Stdin)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read document")
	}

	return string(content), nil
}

func Read(r io.Reader) (string, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read document")
	}

	return string(content), nil
}

// ReadDocuments reads a document for every kind with a non-empty path, in the
// order of kinds.
func ReadDocuments(kinds []string, paths map[string]string) ([]Document, error) {
	var documents []Document
	for _, kind := range kinds {
		path := paths[kind]
		if path == "" {
			continue
		}

		text, err := ReadDocument(path)
		if err != nil {
			return nil, errors.Wrapf(err, "%s schema %s", kind, path)
		}

		documents = append(documents, Document{Kind: kind, Path: path, Text: text})
	}

	return documents, nil
}
