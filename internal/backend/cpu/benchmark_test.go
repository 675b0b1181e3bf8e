package cpu

import (
	"fmt"
	"testing"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/random"
)

// Benchmarks

func benchInputs(b *testing.B, rows, cols int, dtype ndarray.DataType) (*ndarray.Array, *ndarray.Array) {
	b.Helper()
	src := random.NewSource(1)
	x, err := random.Normal(rows, cols, 0, 1, dtype, src)
	if err != nil {
		b.Fatal(err)
	}
	y, err := random.Normal(rows, cols, 0, 1, dtype, src)
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

func BenchmarkAdd(b *testing.B) {
	backend := New()
	x, y := benchInputs(b, 512, 512, ndarray.Float32)
	out, err := ndarray.New(ndarray.Shape{512, 512}, ndarray.Float32)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backend.Add(out, x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDot(b *testing.B) {
	for _, size := range []int{64, 128, 256} {
		for _, mode := range []struct {
			name string
			cfg  parallel.Config
		}{
			{"Sequential", parallel.Sequential()},
			{"Parallel", parallel.DefaultConfig()},
		} {
			b.Run(fmt.Sprintf("%dx%d/%s", size, size, mode.name), func(b *testing.B) {
				backend := NewWithConfig(Config{Parallel: mode.cfg})
				x, y := benchInputs(b, size, size, ndarray.Float64)
				out, err := ndarray.New(ndarray.Shape{size, size}, ndarray.Float64)
				if err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := backend.Dot(out, x, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkConcat(b *testing.B) {
	backend := New()
	x, y := benchInputs(b, 256, 256, ndarray.Float64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backend.Concat(x, y, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubsample(b *testing.B) {
	backend := New()
	x, _ := benchInputs(b, 4096, 16, ndarray.Float64)
	src := random.NewSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backend.Subsample(x, 1024, src); err != nil {
			b.Fatal(err)
		}
	}
}
