package model

// GenerationSettings holds the packing run configuration.
type GenerationSettings struct {
	Kind          ShapeKind `json:"kind"`           // Inclusion geometry to pack
	NumInclusions int       `json:"num_inclusions"` // Target number of placed shapes
	BufferSize    float64   `json:"buffer_size"`    // Clearance from the container edge
	ScaleFactor   float64   `json:"scale_factor"`   // Multiplier on the one-row radius bound
	EqualSize     bool      `json:"equal_size"`     // All inclusions share the maximum radius
	MaxAttempts   int       `json:"max_attempts"`   // Trial budget per inclusion
	Seed          int64     `json:"seed"`           // RNG seed; 0 means time-based

	Container Container `json:"container"`

	// Ellipse sampling: aspect ratio (short/long) range in (0, 1].
	MinAspectRatio float64 `json:"min_aspect_ratio"`
	MaxAspectRatio float64 `json:"max_aspect_ratio"`

	InclusionMaterial MaterialRef `json:"inclusion_material"`
	MatrixMaterial    MaterialRef `json:"matrix_material"`
}

func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Kind:              KindCircle,
		NumInclusions:     10,
		BufferSize:        0.01,
		ScaleFactor:       0.5,
		EqualSize:         true,
		MaxAttempts:       5000,
		Seed:              0,
		Container:         UnitContainer(),
		MinAspectRatio:    0.3,
		MaxAspectRatio:    1.0,
		InclusionMaterial: "Inclusion",
		MatrixMaterial:    "Matrix",
	}
}
