package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gosuri/uilive"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/ndarray"
)

// runBench multiplies two random square matrices in a loop and renders live
// throughput until the duration elapses or the user interrupts.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	size := fs.Int("size", 256, "matrix extent")
	duration := fs.Duration("duration", 5*time.Second, "how long to run")
	workers := fs.Int("workers", runtime.NumCPU(), "worker goroutines (1 disables parallelism)")
	dtypeName := fs.String("dtype", "float64", "float64 or float32")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dtype, err := ndarray.ParseDataType(*dtypeName)
	if err != nil {
		return err
	}

	cfg := cpu.DefaultConfig()
	cfg.Parallel.NumWorkers = *workers
	cfg.Parallel.Enabled = *workers > 1
	backend := cpu.NewWithConfig(cfg)

	src := ndarray.NewSource(1)
	a, err := ndarray.Normal(*size, *size, 0, 1, dtype, src)
	if err != nil {
		return err
	}
	b, err := ndarray.Normal(*size, *size, 0, 1, dtype, src)
	if err != nil {
		return err
	}
	out, err := ndarray.New(ndarray.Shape{*size, *size}, dtype)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	writer := uilive.New()
	header := writer.Newline()
	progress := writer.Newline()
	rate := writer.Newline()
	writer.Start()
	defer writer.Stop()

	title := fmt.Sprintf("Dot %dx%d %s on %d workers", *size, *size, dtype, *workers)
	lines := benchLines{header: header, progress: progress, rate: rate, title: title}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	flops := 2 * float64(*size) * float64(*size) * float64(*size)
	start := time.Now()
	var iterations int
	for {
		select {
		case <-ctx.Done():
			lines.report(iterations, time.Since(start), flops)
			return nil
		case <-ticker.C:
			lines.report(iterations, time.Since(start), flops)
		default:
			if _, err := backend.Dot(out, a, b); err != nil {
				return err
			}
			iterations++
		}
	}
}

// benchLines are the live lines. uilive clears them on every flush.
type benchLines struct {
	header, progress, rate io.Writer
	title                  string
}

func (l benchLines) report(iterations int, elapsed time.Duration, flops float64) {
	secs := elapsed.Seconds()
	if secs == 0 {
		return
	}
	fmt.Fprintln(l.header, l.title)
	fmt.Fprintf(l.progress, "Iterations: %d in %s\n", iterations, elapsed.Round(time.Millisecond))
	fmt.Fprintf(l.rate, "Throughput: %.1f ops/s, %.2f GFLOP/s\n", float64(iterations)/secs, float64(iterations)*flops/secs/1e9)
}
