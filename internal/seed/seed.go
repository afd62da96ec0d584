// Package seed reads and writes YAML files of contacts for bulk import and
// export. Every entry is checked against a CUE schema before import.
//
// File layout:
//
//	contacts:
//	  - id: 5f0c...      # optional, generated when absent
//	    name: Alice
//	    mobile: "5551234"
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/repository"
)

//go:embed schema.cue
var schemaCUE string

// File is the top-level seed document.
type File struct {
	Contacts []Entry `yaml:"contacts"`
}

// Entry is one contact in a seed file.
type Entry struct {
	ID     string `yaml:"id,omitempty" json:"id,omitempty"`
	Name   string `yaml:"name"         json:"name"`
	Mobile string `yaml:"mobile"       json:"mobile"`
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&file); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &file, nil
}

// Validate checks every entry against the CUE schema and for duplicate IDs.
// All problems are reported together.
func Validate(file *File) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	entrySchema := schema.LookupPath(cue.ParsePath("#Entry"))

	var errs []error
	seen := make(map[string]int, len(file.Contacts))
	for i, entry := range file.Contacts {
		v := entrySchema.Unify(ctx.Encode(entry))
		if err := v.Validate(cue.Concrete(true)); err != nil {
			errs = append(errs, fmt.Errorf("contacts[%d]: %w", i, err))
		}
		if entry.ID == "" {
			continue
		}
		if first, ok := seen[entry.ID]; ok {
			errs = append(errs, fmt.Errorf("contacts[%d]: duplicate id %q (first at contacts[%d])", i, entry.ID, first))
			continue
		}
		seen[entry.ID] = i
	}
	return errors.Join(errs...)
}

// Import saves every entry through repo, generating IDs where absent.
// Returns the imported contacts in file order.
func Import(ctx context.Context, repo repository.Repository, file *File, ids contact.IDGenerator) []contact.Contact {
	imported := make([]contact.Contact, 0, len(file.Contacts))
	for _, entry := range file.Contacts {
		c := contact.WithID(entry.ID, entry.Name, entry.Mobile)
		if c.ID == "" {
			c = contact.New(ids, entry.Name, entry.Mobile)
		}
		repo.SaveContact(ctx, c)
		imported = append(imported, c)
	}
	return imported
}

// Write encodes contacts as a seed document.
func Write(w io.Writer, contacts []contact.Contact) error {
	file := File{Contacts: make([]Entry, 0, len(contacts))}
	for _, c := range contacts {
		file.Contacts = append(file.Contacts, Entry{ID: c.ID, Name: c.Name, Mobile: c.Mobile})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encode seed file: %w", err)
	}
	return enc.Close()
}
