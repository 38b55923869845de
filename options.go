package tablex

import "io"

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// debugWriter receives the grid-construction trace; nil disables it.
	debugWriter io.Writer
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		debugWriter: o.debugWriter,
	}
}
