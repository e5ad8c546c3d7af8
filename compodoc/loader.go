// Package compodoc loads the documentation.json file produced by Compodoc.
package compodoc

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ngexplorer"
)

// DefaultPath is the documentation file used when none is configured.
const DefaultPath = "./documentation.json"

// Ensure Loader implements ngexplorer.Loader at compile time.
var _ ngexplorer.Loader = (*Loader)(nil)

// Loader reads and parses a documentation file once and caches the
// resulting collection. A Loader is owned by a single invocation and is not
// safe for concurrent use.
type Loader struct {
	path  string
	cache *ngexplorer.Collection

	// ReadFile reads the document. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// NewLoader creates a Loader for path, resolved against the working
// directory.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Loader{
		path:     path,
		ReadFile: os.ReadFile,
	}
}

// Path returns the resolved document path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the cached collection, reading the document on first use.
func (l *Loader) Load(ctx context.Context) (*ngexplorer.Collection, error) {
	if l.cache != nil {
		return l.cache, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ngexplorer.Errorf(ngexplorer.ENOTFOUND, "Documentation file not found at: %s", l.path)
	} else if err != nil {
		return nil, ngexplorer.Errorf(ngexplorer.EINTERNAL, "Failed to load documentation: %v", err)
	}

	coll, err := Parse(data)
	if err != nil {
		return nil, ngexplorer.Errorf(ngexplorer.EINVALID, "Failed to parse documentation.json at: %s. The file may be corrupted. Error: %v", l.path, err)
	}
	coll.Path = l.path

	l.cache = coll
	return coll, nil
}

// ClearCache drops the cached collection so the next Load reads the file
// again.
func (l *Loader) ClearCache() {
	l.cache = nil
}

// Parse decodes a documentation document into a collection. Absent arrays
// yield empty partitions. A malformed record is skipped or read leniently
// instead of failing the document; only a document that is not a JSON
// object with array-valued construct keys is an error.
func Parse(data []byte) (*ngexplorer.Collection, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	coll := &ngexplorer.Collection{Fingerprint: xxhash.Sum64(data)}
	for _, p := range []struct {
		records []json.RawMessage
		kind    ngexplorer.ConstructType
		dst     *[]*ngexplorer.Construct
	}{
		{doc.Components, ngexplorer.TypeComponent, &coll.Components},
		{doc.Injectables, ngexplorer.TypeInjectable, &coll.Injectables},
		{doc.Directives, ngexplorer.TypeDirective, &coll.Directives},
		{doc.Pipes, ngexplorer.TypePipe, &coll.Pipes},
		{doc.Modules, ngexplorer.TypeModule, &coll.Modules},
		{doc.Classes, ngexplorer.TypeClass, &coll.Classes},
	} {
		constructs, skipped := toConstructs(p.records, p.kind)
		*p.dst = constructs
		coll.Skipped += skipped
	}
	return coll, nil
}
