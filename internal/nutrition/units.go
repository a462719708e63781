package nutrition

import (
	"math"
	"strings"
)

const (
	kgPerLb = 0.45359237
	cmPerIn = 2.54
	cmPerFt = 30.48
)

// WeightToKg converts a body weight to kilograms. An empty unit means kg.
func WeightToKg(value float64, unit string) (float64, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalidf("weight must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return value, nil
	case "lb", "lbs":
		return value * kgPerLb, nil
	default:
		return 0, invalidf("invalid weight unit %q (use kg or lb)", unit)
	}
}

// HeightToCm converts a body height to centimeters. An empty unit means cm.
func HeightToCm(value float64, unit string) (float64, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalidf("height must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "cm"
	}
	switch u {
	case "cm":
		return value, nil
	case "in":
		return value * cmPerIn, nil
	case "ft":
		return value * cmPerFt, nil
	default:
		return 0, invalidf("invalid height unit %q (use cm, in or ft)", unit)
	}
}

func WeightFromKg(weightKg float64, unit string) (float64, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return weightKg, nil
	case "lb", "lbs":
		return weightKg / kgPerLb, nil
	default:
		return 0, invalidf("invalid weight unit %q (use kg or lb)", unit)
	}
}
