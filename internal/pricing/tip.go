package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// ResolveTip returns the tip amount for spec given the pre-tip subtotal
func ResolveTip(spec domain.TipSpec, subtotal float64) float64 {
	if spec.Kind == domain.TipCustom {
		return parseCustomTip(spec.CustomAmount)
	}

	switch spec.Percentage {
	case 10, 15, 20:
		return subtotal * float64(spec.Percentage) / 100
	default:
		return 0
	}
}

func parseCustomTip(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
