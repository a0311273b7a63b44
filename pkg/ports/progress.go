package ports

// ProgressObserver receives one-way progress notifications from long running stages.
// Implementations must not block; the caller never reads state back.
type ProgressObserver interface {
	// Start announces the number of steps that will follow.
	Start(total int)

	// Advance reports one completed step.
	Advance()

	// Finish is called once when the stage stops, successfully or not.
	Finish()
}
