package tracer

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/scene"
)

// orientNormal flips the surface normal, if needed, so it opposes the
// incoming ray direction. Reflection and grating math both use this
// "normal facing the incoming ray" convention.
func orientNormal(direction, normal core.Vec2) core.Vec2 {
	if direction.Negate().Dot(normal) < 0 {
		return normal.Negate()
	}
	return normal
}

// acceptsRay applies the detector acceptance test: the incident travel
// direction must fall strictly inside the cone around the detector's
// required entry direction. A ray exactly on the cone boundary is rejected.
// The test is the same for all four detector edges; the geometric entry
// side is deliberately not considered.
func acceptsRay(d *scene.Detector, incident core.Vec2, acceptanceDeg float64) bool {
	threshold := math.Cos(acceptanceDeg * math.Pi / 180)
	return incident.Dot(d.RequiredDirection()) > threshold
}

// mirrorChildren returns the outgoing directions spawned by a mirror hit,
// dispatched over the mirror kind: one reflection for a plain mirror,
// reflection plus transmission for a beam splitter, and the zero order plus
// up to two first diffraction orders for a grating.
func mirrorChildren(m *scene.Mirror, direction core.Vec2, gratingK float64) []core.Vec2 {
	normal := orientNormal(direction, m.Segment().Normal())

	switch m.Kind {
	case scene.PlainMirror:
		return []core.Vec2{direction.Reflect(normal)}
	case scene.BeamSplitter:
		return []core.Vec2{direction.Reflect(normal), direction}
	case scene.DiffractionGrating:
		return gratingChildren(direction, normal, gratingK)
	default:
		return nil
	}
}

// gratingChildren computes the transmitted orders of a diffraction grating:
// the zero order continues unchanged; for m = ±1 the grating equation
// sin(θ_m) = sin(θ_i) - m·K gives the outgoing angle measured from the
// outgoing-side normal. Orders with |sin(θ_m)| > 1 are evanescent and spawn
// no child.
func gratingChildren(direction, normalIn core.Vec2, k float64) []core.Vec2 {
	children := []core.Vec2{direction}

	normalOut := normalIn.Negate()
	thetaIn := direction.Angle() - normalIn.Angle()

	for _, m := range []float64{1, -1} {
		sinOut := math.Sin(thetaIn) - m*k
		if math.Abs(sinOut) > 1 {
			continue
		}
		thetaOut := math.Asin(sinOut)
		children = append(children, core.VecFromAngle(normalOut.Angle()+thetaOut))
	}
	return children
}
