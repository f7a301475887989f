package batch

// Package batch runs the load/merge/save pipeline over a queue of model files
// on a single background goroutine, strictly one file at a time. Per-file
// failures are recorded and the run continues; progress and the final tally are
// propagated to the UI via callbacks.
