package ngexplorer

// Collection is the full set of constructs from one documentation file,
// partitioned by kind. It is immutable once built.
type Collection struct {
	// Path is the absolute location of the source document.
	Path string

	// Fingerprint is a hash of the raw document bytes.
	Fingerprint uint64

	// Skipped counts records that were dropped because they could not be
	// read as constructs.
	Skipped int

	Components  []*Construct
	Injectables []*Construct
	Directives  []*Construct
	Pipes       []*Construct
	Modules     []*Construct
	Classes     []*Construct
}

// All returns every construct flattened in kind order: components,
// injectables, directives, pipes, modules, classes.
func (c *Collection) All() []*Construct {
	all := make([]*Construct, 0, c.Len())
	all = append(all, c.Components...)
	all = append(all, c.Injectables...)
	all = append(all, c.Directives...)
	all = append(all, c.Pipes...)
	all = append(all, c.Modules...)
	all = append(all, c.Classes...)
	return all
}

// Len returns the total number of constructs.
func (c *Collection) Len() int {
	return len(c.Components) + len(c.Injectables) + len(c.Directives) +
		len(c.Pipes) + len(c.Modules) + len(c.Classes)
}

// Stats returns construct counts for the collection.
func (c *Collection) Stats() Stats {
	return Stats{
		Components:  len(c.Components),
		Injectables: len(c.Injectables),
		Directives:  len(c.Directives),
		Pipes:       len(c.Pipes),
		Modules:     len(c.Modules),
		Classes:     len(c.Classes),
		Total:       c.Len(),
		Path:        c.Path,
		Fingerprint: c.Fingerprint,
	}
}

// Stats summarizes a loaded collection.
type Stats struct {
	Components  int    `json:"components"`
	Injectables int    `json:"injectables"`
	Directives  int    `json:"directives"`
	Pipes       int    `json:"pipes"`
	Modules     int    `json:"modules"`
	Classes     int    `json:"classes"`
	Total       int    `json:"total"`
	Path        string `json:"path"`
	Fingerprint uint64 `json:"fingerprint"`
}
