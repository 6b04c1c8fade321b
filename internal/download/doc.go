package download

// Package download manages the lifecycle of download requests handed over by
// the rendering engine: prompting for a save location, running the HTTP
// transfer, propagating progress to the UI, and reporting each terminal state
// exactly once. Failures are terminal; nothing is retried.
