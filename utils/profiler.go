package utils

import (
	"github.com/blogmux/blogmux/utils/dotenv"
	"github.com/blogmux/blogmux/utils/flag"
	Logger "github.com/blogmux/blogmux/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// InitProfiler starts the Datadog profiler. No-op for development runs and
// outside production.
func InitProfiler() {
	if flag.IsDevelopment || dotenv.RuntimeEnv() != dotenv.ProdEnv {
		return
	}

	if err := profiler.Start(
		profiler.WithService(flag.ServiceName),
		profiler.WithEnv(dotenv.RuntimeEnv()),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			// The profiles below are disabled by
			// default to keep overhead low, but
			// can be enabled as needed.
			// profiler.BlockProfile,
			// profiler.MutexProfile,
			// profiler.GoroutineProfile,
		),
	); err != nil {
		Logger.Log.Fatal(err)
	}
}

// CloseProfiler stops the profiler, OK to be closed multiple times
func CloseProfiler() {
	profiler.Stop()
}
