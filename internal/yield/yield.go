package yield

import (
	"fmt"
	"math"
	"strings"

	"zerohunger/internal/domain"
)

// Crop is a supported crop.
type Crop string

const (
	Wheat     Crop = "Wheat"
	Rice      Crop = "Rice"
	Maize     Crop = "Maize"
	Sugarcane Crop = "Sugarcane"
)

// Soil is a supported soil type.
type Soil string

const (
	Loamy Soil = "Loamy"
	Sandy Soil = "Sandy"
	Clay  Soil = "Clay"
)

// Input bounds accepted by Validate.
const (
	MinArea = 0.5
	MaxArea = 100.0
)

// base yield in tons per acre
var baseYield = map[Crop]float64{
	Wheat:     2.5,
	Rice:      3.0,
	Maize:     2.8,
	Sugarcane: 4.5,
}

var soilFactor = map[Soil]float64{
	Loamy: 1.2,
	Sandy: 0.9,
	Clay:  1.0,
}

// Crops returns the supported crops in display order.
func Crops() []Crop { return []Crop{Wheat, Rice, Maize, Sugarcane} }

// Soils returns the supported soil types in display order.
func Soils() []Soil { return []Soil{Loamy, Sandy, Clay} }

// ParseCrop resolves a crop name case-insensitively.
func ParseCrop(s string) (Crop, error) {
	for _, c := range Crops() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", domain.WrapError(domain.ErrInvalidInput, "parse crop", fmt.Errorf("unknown crop %q", s))
}

// ParseSoil resolves a soil type case-insensitively.
func ParseSoil(s string) (Soil, error) {
	for _, so := range Soils() {
		if strings.EqualFold(strings.TrimSpace(s), string(so)) {
			return so, nil
		}
	}
	return "", domain.WrapError(domain.ErrInvalidInput, "parse soil", fmt.Errorf("unknown soil type %q", s))
}

// Estimate returns the expected harvest in tons. It performs no validation;
// unknown crops or soils contribute a zero factor.
func Estimate(crop Crop, soil Soil, area, rainfall, fertilizer float64) float64 {
	rainFactor := rainfall / 500
	fertFactor := fertilizer / 100
	perAcre := baseYield[crop] * soilFactor[soil] * (0.5 + rainFactor + fertFactor)
	return perAcre * area
}

// Inputs groups the values collected by the yield form.
type Inputs struct {
	Crop       Crop
	Soil       Soil
	Area       float64 // acres
	Rainfall   float64 // mm
	Fertilizer float64 // kg
}

// Validate rejects out-of-range values instead of clamping them.
func (in Inputs) Validate() error {
	if _, ok := baseYield[in.Crop]; !ok {
		return domain.WrapError(domain.ErrInvalidInput, "validate yield inputs", fmt.Errorf("unknown crop %q", in.Crop))
	}
	if _, ok := soilFactor[in.Soil]; !ok {
		return domain.WrapError(domain.ErrInvalidInput, "validate yield inputs", fmt.Errorf("unknown soil type %q", in.Soil))
	}
	if math.IsNaN(in.Area) || in.Area < MinArea || in.Area > MaxArea {
		return domain.WrapError(domain.ErrInvalidInput, "validate yield inputs", fmt.Errorf("area %v outside [%v, %v] acres", in.Area, MinArea, MaxArea))
	}
	if math.IsNaN(in.Rainfall) || math.IsInf(in.Rainfall, 0) || in.Rainfall < 0 {
		return domain.WrapError(domain.ErrInvalidInput, "validate yield inputs", fmt.Errorf("rainfall %v must be a non-negative number", in.Rainfall))
	}
	if math.IsNaN(in.Fertilizer) || math.IsInf(in.Fertilizer, 0) || in.Fertilizer < 0 {
		return domain.WrapError(domain.ErrInvalidInput, "validate yield inputs", fmt.Errorf("fertilizer %v must be a non-negative number", in.Fertilizer))
	}
	return nil
}

// Estimate validates the inputs and returns the estimated tonnage.
func (in Inputs) Estimate() (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return Estimate(in.Crop, in.Soil, in.Area, in.Rainfall, in.Fertilizer), nil
}

// Format renders a result for display, rounding to two decimals.
func Format(in Inputs, tons float64) string {
	return fmt.Sprintf("Estimated Yield for %s on %.1f acres: %.2f tons", in.Crop, in.Area, tons)
}
