package match3

import "errors"

var (
	// ErrGenerationFailed means no playable board was found within the
	// attempt limit. It points at a grid size / alphabet misconfiguration.
	ErrGenerationFailed = errors.New("match3: board generation failed")

	// ErrCascadeOverflow means a cascade did not settle within the pass cap.
	ErrCascadeOverflow = errors.New("match3: cascade did not settle")
)
