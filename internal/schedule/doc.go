package schedule

// Package schedule runs a function repeatedly with fixed-delay semantics:
// each run is re-armed one interval after the previous run finished, so a
// slow run delays the next one instead of being caught up.
