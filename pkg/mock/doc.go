// Package mock defines the value types shared by every intercept component:
// the request Signature used as the lookup key for overrides and cached
// observations, and the response Descriptor that describes a canned or
// captured HTTP response.
//
// Both types are constructor-validated and immutable. An invalid Signature or
// Descriptor cannot be created; validation failures are reported as
// *ValidationError at construction time, never deferred.
//
// Signatures are plain comparable values: two signatures built from the same
// method and path compare equal and hash identically, which makes them safe
// map keys for the repository.
package mock
