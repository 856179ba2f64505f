package parameter

// Projection defaults
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 75.0

	// CameraNear and CameraFar are the clip distances
	CameraNear = 0.1
	CameraFar  = 1000.0

	// CellAspect is the height/width ratio of one terminal cell
	// Horizontal coordinates are scaled by it so circles stay round
	CellAspect = 2.0

	// DefaultViewportWidth and DefaultViewportHeight apply until the first resize
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 24
)

// Pointer hover highlight, applied to rings, crystals and orbiters
const (
	// HoverRadius is the pick distance in normalized device coordinates
	HoverRadius = 0.12

	// HoverScale enlarges a hovered entity about its position
	HoverScale = 1.3

	// HoverGain multiplies a hovered entity's opacity, clamped to 1
	HoverGain = 1.6
)
