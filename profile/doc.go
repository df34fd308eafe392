// Package profile provides optional runtime profiling built on
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	sigma --pprof-mode cpu --pprof-dir ./profiles eval budget.txt
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// Without the tag, [Profiler.Start] is a no-op and [Modes] is empty.
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread and trace. Profile files are named after the mode (cpu.pprof,
// mem.pprof, ...) and written to the configured directory.
//
// With the tag, the package also imports [net/http/pprof], which registers
// its handlers on [net/http.DefaultServeMux]. The sigma HTTP server uses its
// own router, so those handlers are only reachable from a program that
// serves the default mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
