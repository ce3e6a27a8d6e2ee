package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseNumber parses a numeric literal token. Literals that overflow or
// underflow float64 still count as numbers, saturating to ±Inf or 0.
// Digit separators and hexadecimal mantissas are not literals.
func parseNumber(token string) (float64, bool) {
	if strings.ContainsRune(token, '_') || isHexLiteral(token) {
		return 0, false
	}
	val, err := strconv.ParseFloat(token, 64)
	if err == nil {
		return val, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return val, true
	}
	return 0, false
}

func isHexLiteral(token string) bool {
	token = strings.TrimLeft(token, "+-")
	return len(token) > 1 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X')
}

// formatNumber renders a value in plain decimal form, never using an
// exponent; infinities render as "inf" and "-inf".
func formatNumber(val float64) string {
	switch {
	case math.IsInf(val, 1):
		return "inf"
	case math.IsInf(val, -1):
		return "-inf"
	case math.IsNaN(val):
		return "NaN"
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func floatBool(val float64) bool { return val != 0 }

func signum(val float64) float64 {
	if math.IsNaN(val) {
		return val
	}
	return math.Copysign(1, val)
}
