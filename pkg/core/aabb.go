package core

// AABB represents an axis-aligned bounding box as one interval per axis.
// It is exposed for shapes to report their extent; scene traversal is a
// linear scan and never prunes with it.
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for UnionAABB
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// minimum thickness of any axis so planar shapes get a non-degenerate box
const aabbMinimumPadding = 0.0001

// NewAABB creates a new AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates an AABB using two opposite corners
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(min(a.X, b.X), max(a.X, b.X)),
		NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	)
}

// UnionAABB returns an AABB that bounds both boxes
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: UnionInterval(a.X, b.X),
		Y: UnionInterval(a.Y, b.Y),
		Z: UnionInterval(a.Z, b.Z),
	}
}

// AxisInterval returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)/2,
		(aabb.Y.Min+aabb.Y.Max)/2,
		(aabb.Z.Min+aabb.Z.Max)/2,
	)
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < aabbMinimumPadding {
		aabb.X = aabb.X.Expand(aabbMinimumPadding)
	}
	if aabb.Y.Size() < aabbMinimumPadding {
		aabb.Y = aabb.Y.Expand(aabbMinimumPadding)
	}
	if aabb.Z.Size() < aabbMinimumPadding {
		aabb.Z = aabb.Z.Expand(aabbMinimumPadding)
	}
}
