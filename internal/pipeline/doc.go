// Package pipeline provides a framework for processing HTML files in stages.
//
// Each input file travels through the same sequence: load (read and decode
// to UTF-8), analyze (size accounting), transform (DOM mutation and
// serialization), write (output file), record (run history). Each stage is
// implemented as a Step that receives the current Job and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for large batches
//
// The pipeline supports both individual files and batch processing with
// concurrency control using errgroup.
package pipeline
