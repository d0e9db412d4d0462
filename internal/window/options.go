package window

// Options configures the window.
type Options struct {
	Title string

	// TPS is the number of update ticks per second.
	TPS int

	// AdvanceKey is one of config.AdvanceKeys.
	AdvanceKey string
}
