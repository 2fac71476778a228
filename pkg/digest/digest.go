// Package digest computes short, stable fingerprints of dataset content for
// use as cache and versioning keys.
//
// The digests are identifiers, not security tokens. Row-table and array
// digests are 8 lowercase hex characters; column-table digests are a full
// 32-character hex value. Digests of different dataset kinds are never
// comparable with each other.
package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

// MaxRows bounds how many rows or array elements contribute content.
const MaxRows = dataset.MaxRows

// ShortLen is the length of a finished digest.
const ShortLen = 8

// Algorithm selects the hash the finisher folds elements with.
type Algorithm string

const (
	// MD5 is the reference finisher hash.
	MD5 Algorithm = "md5"
	// BLAKE3 is an alternative finisher hash. Its digests differ from MD5's.
	BLAKE3 Algorithm = "blake3"
)

// ParseAlgorithm maps a user supplied name to an Algorithm. The empty string
// selects MD5.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", MD5:
		return MD5, nil
	case BLAKE3:
		return BLAKE3, nil
	}
	return "", NewInvalidArgumentError(fmt.Sprintf("unknown digest algorithm %q", s))
}

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case BLAKE3:
		return blake3.New()
	default:
		return md5.New()
	}
}

// Digester computes dataset digests. The zero value uses MD5.
type Digester struct {
	Algorithm Algorithm
}

// Default is the Digester used by the package level functions.
var Default = &Digester{Algorithm: MD5}

// New returns a Digester for alg.
func New(alg Algorithm) *Digester {
	return &Digester{Algorithm: alg}
}

// Finish folds elements, in order, into an 8-character hex digest. It fails
// with an InvalidArgumentError when elements is empty.
func (d *Digester) Finish(elements []Element) (string, error) {
	if len(elements) == 0 {
		return "", NewInvalidArgumentError("no hashable elements were provided for digest creation")
	}

	h := d.Algorithm.newHash()
	for _, e := range elements {
		h.Write(e.DigestBytes())
	}
	return hex.EncodeToString(h.Sum(nil))[:ShortLen], nil
}

// Finish folds elements with the default Digester.
func Finish(elements []Element) (string, error) {
	return Default.Finish(elements)
}
