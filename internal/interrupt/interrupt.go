// Package interrupt cancels a running command on the first interrupt signal
// and exits the process on the second.
package interrupt

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var once sync.Once

// Register installs the signal handler. The first SIGINT/SIGTERM invokes
// cancel so the command can wind down and the working directory can be
// restored; a second signal exits immediately.
func Register(ctx context.Context, cancel func()) {
	once.Do(func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			count := 0
			for {
				select {
				case <-ctx.Done():
					return
				case <-sigChan:
					count++
					if count == 1 {
						fmt.Fprintln(os.Stderr, "Interrupted, stopping command...")
						go cancel()
					} else {
						os.Exit(1)
					}
				}
			}
		}()
	})
}
