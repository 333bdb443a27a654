// Public domain.

package distsolver

// clipErr computes the parallax error to use based on the configured
// floor and the catalogue error.
func (s *Solver) clipErr(catErr float64) (clipped float64) {
	floor := s.p.ErrFloor
	if floor == 0 {
		// no floor configured, catalogue error is used as is,
		// even if it is invalid.
		return catErr
	}
	if !(catErr > 0) {
		// missing or invalid error, use the floor.
		return floor
	}
	// then just return the greater of the two
	if floor > catErr {
		return floor
	}
	return catErr
}
