// Package mlnerr defines the sentinel and typed error taxonomy raised by the
// clause constructor core.
package mlnerr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per documented error kind. Callers can test with
// errors.Is against these regardless of which typed wrapper carries them.
var (
	ErrMissingSchema  = errors.New("signature not present in predicate schema")
	ErrEvidenceDecode = errors.New("evidence database refused to decode atom")
	ErrSchema         = errors.New("existential elimination missing constants for domain")
	ErrEncoding       = errors.New("hybrid distributor received a non-NNF construct")
)

// MissingSchemaError is raised when a path references a signature that the
// caller's predicate schema does not describe.
type MissingSchemaError struct {
	Signature fmt.Stringer
}

func (e *MissingSchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingSchema, e.Signature)
}

func (e *MissingSchemaError) Unwrap() error { return ErrMissingSchema }

// EvidenceDecodeError wraps a failure from the evidence database while
// decoding a ground atom into its constants.
type EvidenceDecodeError struct {
	Signature fmt.Stringer
	AtomID    int
	Cause     error
}

func (e *EvidenceDecodeError) Error() string {
	return fmt.Sprintf("%s: atom %d of %s: %v", ErrEvidenceDecode, e.AtomID, e.Signature, e.Cause)
}

func (e *EvidenceDecodeError) Unwrap() error { return ErrEvidenceDecode }

// SchemaError is raised when normalizing an existential quantifier over a
// domain absent from the supplied constants mapping.
type SchemaError struct {
	Domain string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: domain %q", ErrSchema, e.Domain)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// EncodingError signals a distributor invariant violation: the integer
// encoder was handed a construct that is not atomic, a negated atomic, an
// And, or an Or. This always indicates the normalizer did not run to
// completion before distribution.
type EncodingError struct {
	Construct fmt.Stringer
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEncoding, e.Construct)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }
