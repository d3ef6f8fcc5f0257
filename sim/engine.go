package sim

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// A BenchEndHandler is a handler that is called after the bench finishes its
// last cycle.
type BenchEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine is a unit that keeps the discrete event simulation run.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run will process all the events until the bench finishes
	Run() error

	// Pause will pause the simulation until continue is called.
	Pause()

	// Continue will continue the paused simulation
	Continue()

	// RegisterBenchEndHandler registers a handler that performs some actions
	// after the bench is finished.
	RegisterBenchEndHandler(handler BenchEndHandler)

	// Finished invokes all the registered BenchEndHandler
	Finished()
}
