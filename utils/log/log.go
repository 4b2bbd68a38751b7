package log

import (
	"os"

	"github.com/blogmux/blogmux/utils/dotenv"
	"github.com/blogmux/blogmux/utils/flag"
	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	// JSON in production for machine ingestion, plain text elsewhere for
	// readability.
	if dotenv.RuntimeEnv() == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": dotenv.RuntimeEnv() != dotenv.ProdEnv},
	)
}
