package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the configured frame rate when none is given
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 1
	MaxFPS = 120

	// TaskQueueSize is the initial capacity of each of the loop's two task buffers
	TaskQueueSize = 64

	// PausedFrameInterval is the frame interval while the clock is paused
	PausedFrameInterval = 100 * time.Millisecond
)

// ReferenceFPS is the frame rate that per-frame constants in the effects were tuned at
// Per-frame increments are converted to per-second rates against it
const ReferenceFPS = 60.0

// DefaultSeed seeds scene generators when no seed is configured
const DefaultSeed uint64 = 0x5eed_ba5e_d00d
