package buf

import (
	"fmt"
	"math"
)

// CheckTableBounds validates that count records of recordSize bytes fit in a
// buffer of bufLen bytes, guarding the count*size multiplication against
// overflow. It returns the byte length of the table on success.
//
// This is the required gate before iterating a caller-supplied record table:
//
//	n, err := buf.CheckTableBounds(len(data), count, recordSize)
//	if err != nil {
//	    return fmt.Errorf("table: %w", err)
//	}
//	// data[:n] holds exactly count records
func CheckTableBounds(bufLen, count, recordSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if recordSize <= 0 {
		return 0, fmt.Errorf("invalid record size: %d", recordSize)
	}
	if count > 0 && count > math.MaxInt/recordSize {
		return 0, fmt.Errorf("overflow: count=%d * recordSize=%d", count, recordSize)
	}
	total := count * recordSize
	if total > bufLen {
		return 0, fmt.Errorf("bounds: need %d bytes, have %d", total, bufLen)
	}
	return total, nil
}
