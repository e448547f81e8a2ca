// Package analysis measures how closely a lookup table evaluator follows
// math.Tan.
//
//   - [Sweep]: deviation at evenly spaced angles
//   - [Summarize]: worst-case and RMS error over a sweep
//   - [Compare]: generate and sweep several table configurations concurrently
//
// # Example
//
//	devs := analysis.Sweep(tan.Default(), 0, 85, 1)
//	s := analysis.Summarize(devs)
//	fmt.Printf("worst %.3f%% at %.0f°\n", s.MaxPercent, s.WorstDegrees)
package analysis
