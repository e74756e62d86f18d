// Package sim provides the core timing simulation for a single rotating disk.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - geometry.go: layout and cost constants, LBN to cylinder/surface/sector mapping
//   - request.go: the immutable Request record and its derived location
//   - timing.go: seek, rotational latency and transfer costs; how the clock advances
//   - sstf.go: the SSTF dispatch loop and its best-candidate selection
//
// # Architecture
//
// A Simulator owns one ClockState and threads it through a Dispatcher, which feeds
// requests to the TimingModel in policy order and hands each Completion to a Sink.
// Implementations of the surrounding pieces live in sub-packages:
//   - sim/workload/: input parsing with a parse-warning channel
//   - sim/trace/: output sinks and run summaries
//
// # Key Interfaces
//   - Dispatcher: FCFSDispatcher (input order) and SSTFDispatcher (closest cylinder first)
//   - Sink: receives completions in service order
//
// Everything is single-threaded and deterministic: the same input and policy always
// produce the same completions.
package sim
