package shader

// Stage identifies one stage of a pipeline program.
type Stage uint8

const (
	Vertex Stage = iota
	Fragment
	Geometry
)

func (stage Stage) String() string {
	switch stage {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	}
	return "unknown"
}
