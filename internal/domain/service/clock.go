package service

import "time"

// Clock abstracts the current time so that every time-dependent rule can be
// exercised deterministically. Date arithmetic and comparisons use the
// time.Time methods (Add, Before, After) on values obtained from Now.
type Clock interface {
	Now() time.Time
}
