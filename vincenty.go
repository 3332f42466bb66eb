package vincenty

import (
	"fmt"
	"math"
)

// WGS84 reference ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
const (
	// EquatorialRadius is the semi-major axis (meters).
	EquatorialRadius = 6378137.0
	// PolarRadius is the semi-minor axis (meters).
	PolarRadius = 6356752.31424518
	// Flattening of the ellipsoid.
	Flattening = (EquatorialRadius - PolarRadius) / EquatorialRadius
)

const (
	// ConvergenceThreshold is the largest change of lambda between two
	// iterations that is considered stable (radians, about 0.06 mm).
	ConvergenceThreshold = 1e-12
	// MaxIterations caps the lambda refinement loop.
	MaxIterations = 200
)

// poleEpsilon is how close a latitude may get to a pole (radians).
const poleEpsilon = 1e-10

// GeoPoint is a geographic position in decimal degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ConvergenceError is returned by Distance when lambda did not settle within
// MaxIterations. This happens for nearly antipodal points.
type ConvergenceError struct {
	Iterations int
	Delta      float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("vincenty: failed to converge after %d iterations (delta %g rad)",
		e.Iterations, e.Delta)
}

// Distance solves the inverse geodesic problem using Vincenty's formula and
// returns the length of the geodesic from p1 to p2 (meters).
//
// Coordinates are not range checked. Latitudes within 1e-10 radians of a pole
// are moved just off of it. A *ConvergenceError is returned when the
// iteration does not converge, which is never approximated.
func Distance(p1, p2 GeoPoint) (float64, error) {
	lat1 := p1.Latitude * radians
	lon1 := p1.Longitude * radians
	lat2 := p2.Latitude * radians
	lon2 := p2.Longitude * radians

	if lat1 == lat2 && lon1 == lon2 {
		return 0, nil
	}

	φ1 := offPole(lat1)
	φ2 := offPole(lat2)

	L := math.Abs(lon2 - lon1)
	if L > math.Pi {
		L = 2*math.Pi - L
	}

	// latitudes on the auxiliary sphere
	U1 := math.Atan((1 - Flattening) * math.Tan(φ1))
	U2 := math.Atan((1 - Flattening) * math.Tan(φ2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	λ, λPrev := L, 0.0
	var sinσ, cosσ, σ, sinα, cosSqα, cos2σm float64
	var iterations int
	for iterations < MaxIterations {
		sinλ, cosλ := math.Sincos(λ)
		x := cosU2 * sinλ
		y := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ = math.Sqrt(x*x + y*y)
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		if math.IsNaN(cos2σm) {
			// equatorial line
			cos2σm = 0
		}
		C := Flattening / 16 * cosSqα * (4 + Flattening*(4-3*cosSqα))
		λPrev = λ
		λ = L + (1-C)*Flattening*sinα*
			(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if math.Abs(λ-λPrev) < ConvergenceThreshold {
			break
		}
		iterations++
	}
	// The break condition is checked again here. Only a loop that ran all
	// MaxIterations can fail it; a delta equal to the threshold passes.
	if delta := math.Abs(λ - λPrev); delta > ConvergenceThreshold {
		return 0, &ConvergenceError{Iterations: iterations, Delta: delta}
	}

	uSq := cosSqα * (EquatorialRadius*EquatorialRadius - PolarRadius*PolarRadius) /
		(PolarRadius * PolarRadius)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

	return PolarRadius * A * (σ - Δσ), nil
}

const radians = math.Pi / 180

// offPole nudges a latitude (radians) that sits on a pole so that tan stays
// finite.
func offPole(lat float64) float64 {
	if math.Abs(math.Pi/2-math.Abs(lat)) < poleEpsilon {
		if lat < 0 {
			return -(math.Pi/2 - poleEpsilon)
		}
		return math.Pi/2 - poleEpsilon
	}
	return lat
}
