// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package geo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dharohar-project/dharohar/internal/models"
)

// earthRadiusKm is the mean earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates rejects latitudes outside [-90, 90] and
// longitudes outside [-180, 180].
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return nil
}

// NearestGems returns the gems closest to the given point, nearest
// first with name as the tie-break. Distances are rounded to two
// decimals. A limit of zero or less returns all gems.
func NearestGems(gems []models.HiddenGem, lat, lon float64, limit int) []models.NearbyGem {
	nearby := make([]models.NearbyGem, 0, len(gems))
	for _, gem := range gems {
		nearby = append(nearby, models.NearbyGem{
			HiddenGem:  gem,
			DistanceKM: math.Round(Distance(lat, lon, gem.Latitude, gem.Longitude)*100) / 100,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].DistanceKM != nearby[j].DistanceKM {
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		}
		return strings.ToLower(nearby[i].Name) < strings.ToLower(nearby[j].Name)
	})

	if limit > 0 && limit < len(nearby) {
		nearby = nearby[:limit]
	}
	return nearby
}
