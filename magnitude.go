package histdate

import (
	"fmt"
	"math"

	"github.com/modularhistory/histdate/errs"
)

// maxEncodableExponent keeps the inverse exponent inside the calendar's second range
// and the magnitude inside int64.
const maxEncodableExponent = 18

var pow10Table = [...]int64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// encodeMagnitude packs a BCE magnitude into the second (inverse exponent) and
// microsecond (inverse mantissa) fields.
//
// The mantissa keeps SignificantFigures digits, so only magnitudes that are exact at
// that precision survive a round trip unchanged.
func encodeMagnitude(yearsBCE int64) (second int, microsecond int, err error) {
	if yearsBCE <= 0 {
		return 0, 0, fmt.Errorf("%w: %d must be positive", errs.ErrInvalidMagnitude, yearsBCE)
	}

	exponent := numDigits(yearsBCE) - 1

	var mantissa int64
	if exponent >= SignificantFigures-1 {
		p := pow10Table[exponent-(SignificantFigures-1)]
		// yearsBCE + p/2 would overflow near math.MaxInt64
		mantissa = yearsBCE / p
		if r := yearsBCE % p; r >= p-r {
			mantissa++
		}
	} else {
		mantissa = yearsBCE * pow10Table[SignificantFigures-1-exponent]
	}

	// rounding carried into a fifth digit
	if mantissa >= pow10Table[SignificantFigures] {
		mantissa /= 10
		exponent++
	}

	if exponent > maxEncodableExponent {
		return 0, 0, fmt.Errorf("%w: %d exceeds the encodable range", errs.ErrInvalidMagnitude, yearsBCE)
	}

	return exponentInversionBasis - exponent, decimalInversionBasis - int(mantissa), nil
}

// decodeMagnitude reverses encodeMagnitude.
//
// Inconsistent encodings are not rejected: they decode to whatever magnitude the
// arithmetic yields, and a non-positive mantissa decodes to 0.
func decodeMagnitude(second int, microsecond int) int64 {
	base := decimalInversionBasis - microsecond
	exponent := exponentInversionBasis - second
	if base <= 0 {
		return 0
	}

	// 4-significant-figure decimal d.ddd, kept as the integer dddd
	mantissa := int64(base)
	if digits := numDigits(mantissa); digits > SignificantFigures {
		mantissa = roundHalfEven(mantissa, pow10Table[digits-SignificantFigures])
	} else {
		mantissa *= pow10Table[SignificantFigures-digits]
	}

	years := math.Round(float64(mantissa) * math.Pow10(exponent-(SignificantFigures-1)))
	if years > BCEPrehistoryFloor {
		years = math.Round(years/100) * 100
	}

	if years >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(years)
}

// roundHalfEven divides v by step, rounding half to even.
func roundHalfEven(v int64, step int64) int64 {
	q, r := v/step, v%step
	if 2*r > step || (2*r == step && q%2 == 1) {
		q++
	}

	return q
}

// roundSignificant rounds v to the given number of significant figures, half away from zero.
func roundSignificant(v int64, figures int) int64 {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := numDigits(v)
	if digits > figures {
		p := pow10Table[digits-figures]
		q, r := v/p, v%p
		if r >= p-r {
			q++
		}
		v = q * p
	}

	if neg {
		return -v
	}

	return v
}

// roundToMultiple rounds v to the nearest multiple of step, half away from zero.
func roundToMultiple(v int64, step int64) int64 {
	if v < 0 {
		return -roundToMultiple(-v, step)
	}

	return (v + step/2) / step * step
}

func numDigits(v int64) int {
	if v < 0 {
		v = -v
	}

	n := 1
	for v >= 10 {
		v /= 10
		n++
	}

	return n
}
