package scene

// Shape is the coarse render class of an entity
type Shape uint8

const (
	ShapePoint Shape = iota
	ShapeLine
	ShapeMesh
	ShapeSurface
)

func (s Shape) String() string {
	switch s {
	case ShapePoint:
		return "point"
	case ShapeLine:
		return "line"
	case ShapeMesh:
		return "mesh"
	case ShapeSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Kind selects the formula family of an entity, fixed at creation
type Kind uint8

const (
	KindStar Kind = iota
	KindCurtain
	KindRay
	KindFog
	KindSwirl
	KindDrifter
	KindOrbiter
	KindSpinner
	KindCrystal
	KindRing
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindCurtain:
		return "curtain"
	case KindRay:
		return "ray"
	case KindFog:
		return "fog"
	case KindSwirl:
		return "swirl"
	case KindDrifter:
		return "drifter"
	case KindOrbiter:
		return "orbiter"
	case KindSpinner:
		return "spinner"
	case KindCrystal:
		return "crystal"
	case KindRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Shape returns the render class for k
func (k Kind) Shape() Shape {
	switch k {
	case KindCurtain, KindFog:
		return ShapeSurface
	case KindRay:
		return ShapeLine
	case KindCrystal, KindRing:
		return ShapeMesh
	default:
		return ShapePoint
	}
}

// Hoverable reports kinds highlighted when the pointer is over them
func (k Kind) Hoverable() bool {
	return k == KindOrbiter || k == KindCrystal || k == KindRing
}

// Recyclable reports kinds that respawn in place when crossing their group boundary
func (k Kind) Recyclable() bool {
	return k == KindSwirl || k == KindDrifter
}
