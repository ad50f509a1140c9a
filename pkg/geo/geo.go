package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Point — точка в десятичных градусах (lng, lat в порядке orb).
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p Point) toOrb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// DistanceKm возвращает расстояние по дуге большого круга в километрах.
func DistanceKm(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.toOrb(), b.toOrb()) / 1000.0
}

// Contains проверяет попадание точки в полигон (границa считается внутри).
func Contains(polygon orb.Polygon, p Point) bool {
	return planar.PolygonContains(polygon, p.toOrb())
}
