// SPDX-License-Identifier: MIT

package stability

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Sentinel errors for geography resolution.
var (
	// ErrUnknownCountry indicates a country has no resolvable position.
	ErrUnknownCountry = errors.New("stability: country has no known position")

	// ErrBadCoordinates indicates the coordinate table could not be parsed.
	ErrBadCoordinates = errors.New("stability: malformed coordinate table")
)

// DistanceProvider resolves the geographic distance between two countries.
// Implementations return ErrUnknownCountry for unresolvable identifiers.
type DistanceProvider interface {
	Distance(a, b string) (float64, error)
}

// Coordinate is a centroid position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// earthRadiusKm is the mean Earth radius.
const earthRadiusKm = 6371.0

// HaversineProvider resolves great-circle distances from country centroid
// coordinates.
type HaversineProvider struct {
	positions map[string]Coordinate
}

// NewHaversineProvider builds a provider over the given centroid table.
func NewHaversineProvider(positions map[string]Coordinate) *HaversineProvider {
	return &HaversineProvider{positions: positions}
}

// Distance returns the great-circle distance between the two countries'
// centroids in kilometres.
func (p *HaversineProvider) Distance(a, b string) (float64, error) {
	ca, ok := p.positions[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCountry, a)
	}
	cb, ok := p.positions[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCountry, b)
	}

	return haversine(ca, cb), nil
}

// haversine is the great-circle distance in kilometres.
func haversine(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// LoadCoordinates reads a three-column (country, latitude, longitude) CSV
// table into a centroid map. A non-numeric first row is treated as a header.
func LoadCoordinates(r io.Reader) (map[string]Coordinate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	positions := make(map[string]Coordinate)
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCoordinates, err)
		}
		lat, latErr := strconv.ParseFloat(record[1], 64)
		lon, lonErr := strconv.ParseFloat(record[2], 64)
		if latErr != nil || lonErr != nil {
			if first {
				first = false
				continue // header row
			}

			return nil, fmt.Errorf("%w: coordinates for %q", ErrBadCoordinates, record[0])
		}
		first = false
		positions[record[0]] = Coordinate{Lat: lat, Lon: lon}
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadCoordinates)
	}

	return positions, nil
}
