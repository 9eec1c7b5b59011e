// Package install runs items: the Installer handles one item (before hooks,
// links, after hooks) and the Driver fans installers out over the selected
// items on a bounded pool of goroutines.
//
// Every failure is scoped to its item. The Driver never cancels other items
// and never folds per-item failures into a single error; it returns a
// Summary and leaves the exit status to the caller.
package install
