package utils

import (
	"github.com/blogmux/blogmux/utils/dotenv"
	"github.com/blogmux/blogmux/utils/flag"
	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// InitTracer starts the Datadog tracer. No-op for development runs and
// outside production so local runs and tests do not need an agent.
func InitTracer() {
	if flag.IsDevelopment || dotenv.RuntimeEnv() != dotenv.ProdEnv {
		return
	}

	tracer.Start(
		tracer.WithService(flag.ServiceName),
		tracer.WithEnv(dotenv.RuntimeEnv()),
	)

	Logger.Log.WithFields(
		logrus.Fields{"service": flag.ServiceName},
	).Info("tracer initialized")
}

// CloseTracer stops the tracer, OK to be closed multiple times
func CloseTracer() {
	tracer.Stop()
}
