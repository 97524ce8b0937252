// Package driving defines the interfaces through which entry points drive
// the core services: importing the tabular export and migrating event
// images. The CLI adapter depends on these, never on service types directly.
package driving
