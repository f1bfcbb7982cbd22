package contract

import "errors"

var (
	// ErrDuplicateSwipe is returned when the (swiper, swiped) pair already has a swipe.
	ErrDuplicateSwipe = errors.New("swipe already recorded for this pair")

	// ErrMatchConflict is returned when a match already exists for the canonical pair.
	// It never leaves the match detector.
	ErrMatchConflict = errors.New("match already exists for this pair")
)
