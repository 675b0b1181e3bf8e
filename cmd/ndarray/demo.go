package main

import (
	"flag"
	"fmt"

	"github.com/born-ml/ndarray/ndarray"
)

// runDemo creates, fills, transposes and subsamples a few arrays, printing
// each step. A fixed seed makes the output reproducible.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	seed := fs.Int64("seed", 42, "random seed (negative for a random one)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := ndarray.NewSource(*seed)
	fmt.Printf("Seed: %d\n", src.Seed())

	arr, err := ndarray.New(ndarray.Shape{2, 3}, ndarray.Float64)
	if err != nil {
		return err
	}
	defer arr.Release()
	fmt.Printf("Created array with shape: %v\n", arr.Shape())

	randArr, err := ndarray.Normal(3, 4, 2, 1, ndarray.Float64, src)
	if err != nil {
		return err
	}
	defer randArr.Release()
	fmt.Printf("Random array size: %d\n", randArr.Size())

	before, err := randArr.GetFloat(0, 0)
	if err != nil {
		return err
	}
	fmt.Printf("====> bf: %.3f\n", before)
	if err := ndarray.Set(randArr, 88888.12345, 0, 0); err != nil {
		return err
	}
	after, err := randArr.GetFloat(0, 0)
	if err != nil {
		return err
	}
	fmt.Printf("====> af: %.3f\n", after)
	fmt.Println(randArr)

	fmt.Println("test transpose:")
	transposed, err := ndarray.Transpose(randArr)
	if err != nil {
		return err
	}
	defer transposed.Release()
	fmt.Printf("Transposed shape: %v\n", transposed.Shape())
	fmt.Println(transposed)

	fmt.Println("test subsample:")
	sample, err := ndarray.Subsample(transposed, 2, src)
	if err != nil {
		return err
	}
	defer sample.Release()
	fmt.Println(sample)

	return nil
}
