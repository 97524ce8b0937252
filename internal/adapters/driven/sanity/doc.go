// Package sanity implements the ContentStore port against the Sanity
// HTTP API: the mutate endpoint for document batches and patches, the
// query endpoint for candidate selection and the asset endpoint for
// image uploads. Every call carries the caller's bearer token.
package sanity
