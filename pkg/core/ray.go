package core

// RaySettings holds the per-render configuration shared by every ray
type RaySettings struct {
	Background Vec3     // Radiance returned for rays that escape the scene
	MaxDepth   int      // Number of scatter events after which a path returns black
	Hit        Interval // Valid hit-parameter interval for scene queries
}

// DefaultRaySettings returns settings with a black background, depth 50 and hit interval (0.001, 2048)
func DefaultRaySettings() *RaySettings {
	return &RaySettings{
		MaxDepth: 50,
		Hit:      Interval{Min: 0.001, Max: 2048},
	}
}

// Ray is a parametric half line. Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
	Settings  *RaySettings
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3, time float64, settings *RaySettings) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time, Settings: settings}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Spawn creates a ray from origin along direction that shares this ray's time and settings
func (r Ray) Spawn(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Time: r.Time, Settings: r.Settings}
}
