// Package metadata builds and verifies the generation comment attached to
// the head of every catalog document: run identity, timestamp, provenance,
// schema reference and a content hash for tamper detection.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Metadata verification errors.
var (
	ErrNoGenerationBlock = errors.New("no generation block found")
	ErrNoHashFound       = errors.New("no hash found in generation block")
	ErrHashMismatch      = errors.New("hash mismatch")
)

// Metadata describes one generation run.
type Metadata struct {
	RunID       string
	GeneratedAt time.Time
	Provenance  []string
	SchemaRef   string
	Hash        string
}

// New returns metadata for a fresh run.
func New(schemaRef string, provenance ...string) *Metadata {
	return &Metadata{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Provenance:  provenance,
		SchemaRef:   schemaRef,
	}
}

// blockRegex matches the generation comment at the head of a document.
var blockRegex = regexp.MustCompile(`(?s)<!--\s*GENERATED\s*\n(.*?)\n\s*-->`)

// Comment renders the generation block, hashing the document body so
// downstream consumers can detect manual edits. Trailing newlines are
// excluded from the hash for consistency.
func (m *Metadata) Comment(body []byte) string {
	sum := sha256.Sum256(trimTrailing(body))
	m.Hash = hex.EncodeToString(sum[:])

	var b strings.Builder

	b.WriteString("<!-- GENERATED\n")
	fmt.Fprintf(&b, "RUN_ID: %s\n", m.RunID)
	fmt.Fprintf(&b, "GENERATED_AT: %s\n", m.GeneratedAt.Format(time.RFC3339))

	for _, src := range m.Provenance {
		fmt.Fprintf(&b, "SOURCE: %s\n", src)
	}

	fmt.Fprintf(&b, "SCHEMA: %s\n", m.SchemaRef)
	fmt.Fprintf(&b, "HASH: %s\n", m.Hash)
	b.WriteString("-->")

	return b.String()
}

// Extract parses the generation block out of a document, returning the
// metadata and the body that follows the block. The hash covers exactly
// that body, so anything before the block (the XML declaration) is not
// part of it.
func Extract(content []byte) (*Metadata, []byte) {
	loc := blockRegex.FindSubmatchIndex(content)
	if loc == nil {
		return nil, content
	}

	match := blockRegex.FindSubmatch(content)
	body := []byte(strings.TrimLeft(string(content[loc[1]:]), "\n"))

	if len(match) < 2 {
		return nil, body
	}

	meta := &Metadata{}

	for _, line := range strings.Split(string(match[1]), "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			meta.RunID = val
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.GeneratedAt = t
			}
		case "SOURCE":
			meta.Provenance = append(meta.Provenance, val)
		case "SCHEMA":
			meta.SchemaRef = val
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, body
}

// Verify checks a document's body against the hash in its generation block.
func Verify(content []byte) (bool, error) {
	meta, body := Extract(content)
	if meta == nil {
		return false, ErrNoGenerationBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	sum := sha256.Sum256(trimTrailing(body))

	calculated := hex.EncodeToString(sum[:])
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}

func trimTrailing(body []byte) []byte {
	return []byte(strings.TrimRight(string(body), "\n"))
}
