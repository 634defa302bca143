package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/klauspost/cpuid/v2"
)

// WaitForShutdown blocks until an OS interrupt or termination signal is
// received, then cancels ctx's cancel func to initiate graceful
// shutdown of the simulation loop.
func WaitForShutdown(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, initiating shutdown...", sig)
		cancel()
	case <-ctx.Done():
	}
}

// PrintBanner prints the startup banner, including the host's CPU
// feature summary used to size the default worker pool.
func PrintBanner() {
	banner := `
   ____               ____        _     _
  / ___| ___ _ __     | __ )  ___ (_) __| |___
 | |  _ / _ \ '_ \    |  _ \ / _ \| |/ _` + "`" + ` / __|
 | |_| |  __/ | | |   | |_) | (_) | | (_| \__ \
  \____|\___|_| |_|   |____/ \___/|_|\__,_|___/

    An evolutionary simulator of autonomous agents
    ───────────────────────────────────────────────
`
	fmt.Print(banner)
	log.Printf("cpu: %s, cores=%d, avx2=%v", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.Supports(cpuid.AVX2))
}
