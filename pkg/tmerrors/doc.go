// Package tmerrors defines the named error kinds shared across the map
// construction pipeline (resource descriptors, map cache, element protocol,
// and builder). Centralizing them here, rather than letting each package
// define its own sentinel, mirrors how pkg/carving/types.go defines a single
// minimal Graph/Room/Connector vocabulary to avoid import cycles between
// packages that all need to talk about the same concepts: every pipeline
// package can report DuplicateResource, MissingResource, and so on without
// importing each other.
//
// Every error is an *Error carrying a Kind, so callers can branch on failure
// category with errors.As instead of matching message strings:
//
//	if tmerrors.Is(err, tmerrors.AssetLoadFailed) {
//	    // handle unresolved image path
//	}
package tmerrors
