// Package orchestration coordinates sequence generation runs and decouples
// them from presentation. A run covers one or more sequence kinds computed
// from the same parameters; the comparison mode generates arithmetic and
// geometric sequences concurrently and presents them side by side.
package orchestration
