// Package ngexplorer provides a terminal query layer over the Compodoc
// documentation.json produced for an Angular codebase. It loads the
// document once, indexes components, services, directives, pipes, modules
// and classes for fuzzy search, and renders results and API details.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., compodoc/, doublestar/, lipgloss/).
package ngexplorer
