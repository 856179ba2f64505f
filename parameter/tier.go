package parameter

// Per-tier tables are indexed low, medium, high, ultra
// Every table must be non-decreasing left to right

// Aurora
var (
	AuroraCurtains        = [4]int{3, 4, 5, 6}
	AuroraCurtainSegments = [4]int{25, 35, 50, 64}
	AuroraStars           = [4]int{500, 750, 1000, 1500}
	AuroraRays            = [4]int{10, 15, 20, 30}
	AuroraRaySegments     = [4]int{12, 16, 24, 32}
	AuroraFog             = [4]int{1, 1, 1, 1}
	AuroraFogSegments     = [4]int{10, 14, 20, 28}
)

// Vortex
var (
	VortexParticles = [4]int{500, 750, 1000, 1500}
	VortexRings     = [4]int{4, 6, 8, 10}
	VortexRingSides = [4]int{24, 32, 48, 64}
)

// Crystal
var (
	CrystalCrystals  = [4]int{15, 20, 30, 40}
	CrystalFragments = [4]int{25, 35, 50, 70}
	CrystalEnergy    = [4]int{500, 750, 1000, 1500}
	CrystalSides     = [4]int{4, 5, 6, 8}
)

// Network
var (
	NetworkNodes     = [4]int{12, 20, 32, 48}
	NetworkParticles = [4]int{800, 2000, 4000, 8000}
	NetworkRings     = [4]int{2, 3, 4, 5}
	NetworkRingSides = [4]int{24, 32, 48, 64}
)

// Starfield
var (
	StarfieldStars = [4]int{400, 700, 1000, 2000}
)
