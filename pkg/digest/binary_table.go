package digest

import "github.com/jlrickert/datadigest/pkg/dataset"

// ForBinaryTable always fails with an UnimplementedError.
func ForBinaryTable(*dataset.BinaryTable) (string, error) {
	return "", NewUnimplementedError("binary table digest computation")
}
