// Command healthcheck probes a running zaiboost server and exits non-zero
// when it is not healthy. It is meant for container HEALTHCHECK lines.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/service/clients"
	"go.uber.org/zap"
)

func main() {
	url := flag.String("url", "http://localhost:3000", "base url of the server")
	attempts := flag.Int("attempts", 3, "attempts before giving up")
	timeout := flag.Duration("timeout", 2*time.Second, "per attempt timeout")
	logLevel := flag.String("ll", "warn", "logging level")
	flag.Parse()

	if err := logger.InitLogger(*logLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	if *attempts < 1 {
		*attempts = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*attempts+1)*(*timeout))
	defer cancel()

	hc := clients.NewHealthClient(*url, *attempts, *timeout)
	status, err := hc.Check(ctx)
	if err != nil {
		logger.Log.Error("unhealthy", zap.String("url", *url), zap.Error(err))
		logger.Log.Sync()
		os.Exit(1)
	}
	logger.Log.Info("healthy", zap.Float64("uptime", status.Uptime))
}
