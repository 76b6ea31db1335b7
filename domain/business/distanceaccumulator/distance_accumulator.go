package distanceaccumulator

import "errors"

var ErrEmptyAccumulator = errors.New("cannot get average distance, counter is zero")

// DistanceAccumulator struct that collects data about the distance between the stations of each trip
// + Counter: counts the amount of trips whose distance is known
// + Skipped: counts the amount of trips with a station that is not in the catalog
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	Skipped       int     `json:"skipped"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

// Skip registers a trip whose distance could not be computed
func (da *DistanceAccumulator) Skip() {
	da.Skipped += 1
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDistance / float64(da.Counter), nil
}
