package sim

import "errors"

var (
	// ErrFrameLimit indicates the frame log reached its configured capacity.
	ErrFrameLimit = errors.New("sim: frame log capacity exceeded")

	// ErrRoundBound indicates a multi-round run went past active+StuckLimit
	// rounds, which a well-formed grid cannot do.
	ErrRoundBound = errors.New("sim: round bound exceeded")
)
