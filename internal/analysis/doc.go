// Package analysis summarises built diagrams.
//
//   - [Summarize]: orbit counts, fixed points, bucket occupancy, chord lengths
//   - [SortedMagnitudes]: the ascending chord lengths the cutoffs are read from
//   - [OrbitLengths], [LengthHistogram]: cycle structure of the multiplier
//
// The CLI plots these series with asciigraph:
//
//	d, _ := diagram.Build(cfg)
//	plot := asciigraph.Plot(analysis.SortedMagnitudes(d))
package analysis
