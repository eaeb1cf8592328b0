// Package fare estimates trip fares client-side, matching the backend's
// pricing model so riders see a number before booking.
package fare

import (
	"math"

	"github.com/ev-platform/evctl/internal/api"
)

// earthRadiusKm is the sphere radius used for haversine distance.
const earthRadiusKm = 6371

// baseFare is the flag-down amount per vehicle type, in INR.
var baseFare = map[api.VehicleType]float64{
	api.VehicleCycle:   10,
	api.VehicleScooter: 20,
	api.VehicleBike:    30,
	api.VehicleCar:     50,
}

// ratePerKm is the distance rate per vehicle type, in INR.
var ratePerKm = map[api.VehicleType]float64{
	api.VehicleCycle:   5,
	api.VehicleScooter: 8,
	api.VehicleBike:    12,
	api.VehicleCar:     15,
}

// Distance returns the haversine distance between two points in kilometers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lng1r := lng1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	lng2r := lng2 * math.Pi / 180

	dlat := lat2r - lat1r
	dlng := lng2r - lng1r

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Pow(math.Sin(dlng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Estimate returns the estimated fare for a trip. The fare is the base
// amount plus the per-km rate times the haversine distance, floored at
// twice the base amount. Unknown vehicle types fall back to car pricing.
func Estimate(pickupLat, pickupLng, dropLat, dropLng float64, vt api.VehicleType) float64 {
	base, ok := baseFare[vt]
	if !ok {
		base = baseFare[api.VehicleCar]
	}
	rate, ok := ratePerKm[vt]
	if !ok {
		rate = ratePerKm[api.VehicleCar]
	}

	distance := Distance(pickupLat, pickupLng, dropLat, dropLng)
	total := base + distance*rate

	minimum := base * 2
	return math.Max(total, minimum)
}
