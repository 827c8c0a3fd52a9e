// Command lineardemo runs the reference scenarios for the list, array and
// queue containers and logs what they produce.
//
//	lineardemo [list|array|queue]
package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"linearx/config"
	"linearx/log"
)

func main() {
	logger := log.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	which := ""
	if len(os.Args) >= 2 {
		which = os.Args[1]
	}
	if err := run(cfg, logger, prometheus.NewRegistry(), which); err != nil {
		logger.Fatal("%v", err)
	}
}
