// SPDX-License-Identifier: MIT

package complexfile

import "errors"

var (
	// ErrFormat marks an unsupported file extension.
	ErrFormat = errors.New("complexfile: unsupported format")

	// ErrDecode marks a document that does not match the schema.
	ErrDecode = errors.New("complexfile: decode error")

	// ErrEmpty marks a document with neither simplices nor stages.
	ErrEmpty = errors.New("complexfile: document has no simplices")

	// ErrAmbiguous marks a document with both simplices and stages.
	ErrAmbiguous = errors.New("complexfile: both simplices and stages given")

	// ErrLabel marks a label key that is not a vertex id.
	ErrLabel = errors.New("complexfile: invalid label key")
)
