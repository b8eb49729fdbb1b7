// Package writer persists the catalog document to disk with its
// generation comment. Writing is the last, external step of the pipeline;
// the core hands over a fully validated document.
package writer

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"bfpogen/internal/serializer"
	"bfpogen/pkg/metadata"
)

// Writer writes catalog documents.
type Writer struct {
	serializer *serializer.Serializer
}

// NewWriter creates a new writer instance.
func NewWriter(s *serializer.Serializer) *Writer {
	return &Writer{serializer: s}
}

// Write renders the document with a leading generation comment and writes
// it atomically (temp file plus rename) to path.
func (w *Writer) Write(doc *serializer.Document, meta *metadata.Metadata, path string, pretty bool) error {
	body, err := w.serializer.Marshal(doc, pretty)
	if err != nil {
		return err
	}

	comment := meta.Comment(body)

	out := make([]byte, 0, len(xml.Header)+len(comment)+len(body)+2)
	out = append(out, []byte(xml.Header)...)
	out = append(out, []byte(comment)...)
	out = append(out, '\n')
	out = append(out, body...)
	out = append(out, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bfpogen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to write document: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to move document into place: %w", err)
	}

	return nil
}
