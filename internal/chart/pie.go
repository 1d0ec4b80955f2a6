// Package chart computes the geometry for the dashboard's SVG charts.
package chart

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/tallybook/backend/internal/models"
)

// palette is cycled through when there are more slices than colors.
var palette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}

const (
	centerX = 100.0
	centerY = 100.0
	radius  = 80.0
)

// Slice is one wedge of a pie chart, precomputed so that the template only
// has to place the values into markup.
type Slice struct {
	Label      string
	Value      decimal.Decimal
	Color      string
	StartAngle float64
	EndAngle   float64
	LargeArc   bool
	// FullCircle is set when the slice covers the whole pie. An SVG arc
	// with identical start and end points collapses to nothing, so a full
	// slice is rendered as a circle.
	FullCircle bool
	Path       string
}

// Pie converts category totals into consecutive pie slices on a 200x200
// viewBox, starting at 0° and proceeding clockwise. Each slice's angle is
// its share of the sum of all totals.
func Pie(totals []models.CategoryTotal) []Slice {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}

	if !sum.IsPositive() {
		return []Slice{}
	}

	slices := make([]Slice, 0, len(totals))
	total := sum.InexactFloat64()
	currentAngle := 0.0

	for i, t := range totals {
		angle := t.Total.InexactFloat64() / total * 360

		s := Slice{
			Label:      t.Category,
			Value:      t.Total,
			Color:      palette[i%len(palette)],
			StartAngle: currentAngle,
			EndAngle:   currentAngle + angle,
			LargeArc:   angle > 180,
			FullCircle: angle >= 360,
		}

		s.Path = arcPath(s.StartAngle, s.EndAngle, s.LargeArc)
		currentAngle = s.EndAngle

		slices = append(slices, s)
	}

	return slices
}

// arcPath builds the SVG path data for a wedge from start to end degrees.
func arcPath(start, end float64, largeArc bool) string {
	x1 := centerX + radius*math.Cos(radians(start))
	y1 := centerY + radius*math.Sin(radians(start))
	x2 := centerX + radius*math.Cos(radians(end))
	y2 := centerY + radius*math.Sin(radians(end))

	large := 0
	if largeArc {
		large = 1
	}

	return fmt.Sprintf("M %g %g L %.4f %.4f A %g %g 0 %d 1 %.4f %.4f Z", centerX, centerY, x1, y1, radius, radius, large, x2, y2)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
