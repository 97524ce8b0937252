// Package driven defines the interfaces the core services require from
// infrastructure: the remote content store, the image fetcher and the
// tabular record reader. Adapters under internal/adapters/driven implement
// these interfaces; the core never imports an adapter.
package driven
