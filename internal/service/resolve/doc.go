// Package resolve prints the resolved version, either as the bare string the
// packaging step consumes or as a table of its components.
package resolve
