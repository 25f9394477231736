// Package layout implements the table layout engine that turns a report table
// into per-slide page descriptors.
package layout

import "github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// EMUPerPoint is the number of EMUs per typographic point.
// 1 inch = 72 points, therefore 914400 / 72 = 12700 EMU per point.
const EMUPerPoint = 12700

// Inches converts inches to EMU, truncating toward zero.
func Inches(in float64) models.EMU {
	return models.EMU(in * EMUPerInch)
}

// Points converts points to EMU, truncating toward zero.
func Points(pt float64) models.EMU {
	return models.EMU(pt * EMUPerPoint)
}

// ToPoints converts EMU to points.
func ToPoints(v models.EMU) float64 {
	return float64(v) / EMUPerPoint
}

// ToInches converts EMU to inches.
func ToInches(v models.EMU) float64 {
	return float64(v) / EMUPerInch
}
