// Package portability moves override and observed data in and out of a
// repository as versioned collection documents.
//
// A Collection is a plain serializable snapshot: it can be encoded to JSON
// or YAML bytes and decoded back. The package never touches the filesystem;
// callers own any I/O, which keeps the repository itself purely in-memory.
//
// Importing validates every entry through the mock constructors before
// anything is written, so a malformed document never leaves the repository
// partially updated.
package portability
