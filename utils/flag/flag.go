/*
flag package sets up cli flags shared across the service

Usage:

	Flags listed in this package are service-agnostic. Flag registration
	happens at package init; Parse must be called once from main before any
	flag value is trusted.
*/
package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "service name, used in logs and traces")
}

// Parse parses the registered flags. Calling it from package init would
// race with the testing package registering its own flags.
func Parse() {
	flag.Parse()
}
