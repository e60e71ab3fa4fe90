package forecastapi

import (
	"fmt"
	"strings"
)

// NetworkError is a transport failure or a non-2xx response from the
// forecast service. StatusCode is zero for transport failures.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch forecast: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ShapeError lists every way a payload departs from the documented schema.
type ShapeError struct {
	Problems []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid forecast payload: %s", strings.Join(e.Problems, "; "))
}

func (e *ShapeError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
