package ooxml

import (
	"archive/zip"
	"bytes"

	"github.com/pkg/errors"

	"quill/internal/domain/service"
)

// exporter implements the DocumentExporter interface.
type exporter struct{}

// NewExporter is the constructor for the OOXML exporter. It is stateless and
// safe for concurrent use.
func NewExporter() service.DocumentExporter {
	return &exporter{}
}

// packageFile is one entry of an OOXML zip package.
type packageFile struct {
	name string
	body string
}

// writePackage assembles the package entries into a zip archive. Entry order
// is preserved; [Content_Types].xml must come first.
func writePackage(files []packageFile) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	for _, file := range files {
		entry, err := archive.Create(file.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create package entry %s", file.name)
		}
		if _, err := entry.Write([]byte(file.body)); err != nil {
			return nil, errors.Wrapf(err, "failed to write package entry %s", file.name)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize package")
	}

	return buf.Bytes(), nil
}
