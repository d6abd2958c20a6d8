package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch means a lunch request named a category with no recipes
	// (or the whole lunch pool is empty). The plan is left untouched.
	ErrNoMatch = errors.New("no matching recipes")

	// ErrLockIndex means a lock toggle named a slot outside the plan.
	ErrLockIndex = errors.New("lock index out of range")

	// ErrNegativeQuota means a quota entry was negative. A negative entry
	// would falsify the total check, so it is rejected before anything else.
	ErrNegativeQuota = errors.New("negative quota")
)

// QuotaMismatchError reports a dinner quota whose total does not equal the
// number of unlocked slots. Nothing is mutated when it is returned.
type QuotaMismatchError struct {
	Expected int // unlocked slot count
	Actual   int // sum of the quota values
}

func (e *QuotaMismatchError) Error() string {
	return fmt.Sprintf("quota total must be %d to fill the unlocked slots, got %d", e.Expected, e.Actual)
}
