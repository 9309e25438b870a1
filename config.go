package ecs

import "log"

// DefaultParallelThreshold is the entity count above which ApplySystem*
// fans out across the thread pool instead of running inline. One source
// revision of the system this package is modeled on used 5000 instead;
// that value is kept available as AlternateParallelThreshold for callers
// who want to reproduce it.
const DefaultParallelThreshold = 300

// AlternateParallelThreshold is the higher of the two historical parallel
// thresholds; see DefaultParallelThreshold.
const AlternateParallelThreshold = 5000

// DefaultCapacity is the Manager entity capacity used by NewManagerDefault.
const DefaultCapacity = 1000

// MaxComponentTypes is the hard ceiling on registered component types,
// fixed by the 64-bit component mask.
const MaxComponentTypes = 64

// Config holds process-wide tunables for the ecs package.
var Config = config{
	ParallelThreshold: DefaultParallelThreshold,
	DebugInvariants:   true,
	Logger:            log.Default(),
}

type config struct {
	// ParallelThreshold is the entity count above which ApplySystem* runs
	// across the thread pool rather than inline on the calling goroutine.
	ParallelThreshold int

	// DebugInvariants, when true, panics (with a bark-traced error) on
	// InvariantViolationError instead of returning it. Release builds that
	// want the soft-failure behavior described in the error handling design
	// should set this to false before constructing any Manager.
	DebugInvariants bool

	// Logger receives the soft-failure diagnostic this package surfaces
	// when AddEntity is called at capacity. Duplicate component adds are
	// reported through InvariantViolationError, not logged.
	Logger *log.Logger
}
