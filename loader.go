package ngexplorer

import "context"

// Loader loads the documentation collection.
type Loader interface {
	// Load returns the parsed collection. Implementations read the
	// underlying document at most once and return the cached collection
	// on subsequent calls.
	//
	// Returns ENOTFOUND if the document does not exist and EINVALID if it
	// cannot be parsed.
	Load(ctx context.Context) (*Collection, error)
}
