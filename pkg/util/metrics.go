package util

import "time"

// TimeOperationMicroseconds runs op and reports how long it took, along with
// whatever op returned.
func TimeOperationMicroseconds(op func() error) (int64, error) {
	start := time.Now()
	err := op()
	return time.Since(start).Microseconds(), err
}
