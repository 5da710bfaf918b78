package parser

import "math"

// parseContentLength is a tiny implementation of strconv.Atoi, accepting non-negative
// decimal numbers only. A single leading plus sign is tolerated.
func parseContentLength(raw string) (num int, err error) {
	if len(raw) > 1 && raw[0] == '+' {
		raw = raw[1:]
	}

	if len(raw) == 0 {
		return 0, ErrInvalidHeader
	}

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			return 0, ErrInvalidHeader
		}

		if num > (math.MaxInt-int(char))/10 {
			return 0, ErrInvalidHeader
		}

		num = num*10 + int(char)
	}

	return num, nil
}
