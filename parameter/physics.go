package parameter

// Damping and recycle constants
// Per-frame multipliers were tuned by eye at ReferenceFPS;
// they are converted to continuous rates and may be overridden from configuration
const (
	// DrifterDampingPerFrame is the velocity multiplier applied each reference frame to drifting energy particles
	DrifterDampingPerFrame = 0.98

	// SwirlPullPerFrame is the radial shrink factor applied each reference frame to vortex particles
	SwirlPullPerFrame = 0.999

	// SpinnerRatePerFrame is the starfield rotation in radians per reference frame on X and Y
	SpinnerRatePerFrame = 0.0005
)

// Recycle boundaries
const (
	// CrystalBoundaryRadius is the outer recycle radius for drifting energy particles
	CrystalBoundaryRadius = 30.0

	// CrystalSpawnRadius bounds drifting particle respawn distance from origin
	CrystalSpawnRadius = 25.0

	// VortexInnerRadius is the inner recycle radius for swirl particles
	VortexInnerRadius = 0.5

	// VortexOuterRadius is the outer recycle radius for swirl particles
	VortexOuterRadius = 20.0

	// VortexSpawnMinRadius and VortexSpawnMaxRadius bound the respawn ring
	VortexSpawnMinRadius = 8.0
	VortexSpawnMaxRadius = 13.0

	// VortexSpawnHeight is the vertical spread of the respawn ring
	VortexSpawnHeight = 4.0

	// CrystalClusterRadius bounds crystal and drifter placement on the XZ plane
	CrystalClusterRadius = 20.0

	// CrystalSpawnHeight is the vertical spread of drifter respawn
	CrystalSpawnHeight = 10.0
)
