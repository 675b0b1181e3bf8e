package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/born-ml/ndarray/ndarray"
)

var errUsage = errors.New("invalid arguments (run 'ndarray help')")

func runInfo(args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	archive, err := ndarray.OpenArchive(args[0])
	if err != nil {
		return err
	}
	defer archive.Close()

	header := archive.Header()
	fmt.Printf("Format version: %d\n", header.FormatVersion)
	fmt.Printf("Byte order:     %s\n", header.ByteOrder)
	fmt.Printf("Created:        %s\n", header.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	for k, v := range header.Metadata {
		fmt.Printf("Meta %s: %s\n", k, v)
	}

	fmt.Printf("\n%-24s %-8s %-16s %12s\n", "NAME", "DTYPE", "SHAPE", "BYTES")
	for _, meta := range header.Arrays {
		fmt.Printf("%-24s %-8s %-16s %12d\n", meta.Name, meta.DType, ndarray.Shape(meta.Shape), meta.Size)
	}

	if err := archive.VerifyChecksum(); err != nil {
		return err
	}
	fmt.Println("\nChecksum OK")
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	dtypeName := fs.String("dtype", "float64", "element type: float64, float32 or uint64")
	name := fs.String("name", "", "array name in the archive (default: input file stem)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	in, out := fs.Arg(0), fs.Arg(1)

	dtype, err := ndarray.ParseDataType(*dtypeName)
	if err != nil {
		return err
	}
	a, err := ndarray.LoadCSV(in, dtype)
	if err != nil {
		return err
	}
	defer a.Release()

	if *name == "" {
		*name = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}
	meta := map[string]string{"source": filepath.Base(in)}
	if err := ndarray.SaveArchive(out, map[string]*ndarray.Array{*name: a}, meta); err != nil {
		return err
	}

	fmt.Printf("Wrote %s %v %s to %s\n", *name, a.Shape(), a.DType(), out)
	return nil
}

func runPrint(args []string) error {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	dtypeName := fs.String("dtype", "float64", "element type of a CSV input")
	name := fs.String("name", "", "array to print from an archive (default: all)")
	stats := fs.Bool("stats", false, "also print the total and per-column means of float arrays")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	if strings.EqualFold(filepath.Ext(path), ".nda") {
		return printArchive(path, *name, *stats)
	}

	dtype, err := ndarray.ParseDataType(*dtypeName)
	if err != nil {
		return err
	}
	a, err := ndarray.LoadCSV(path, dtype)
	if err != nil {
		return err
	}
	defer a.Release()

	fmt.Printf("%s %v\n%v\n", a.DType(), a.Shape(), a)
	if *stats {
		return printStats(a)
	}
	return nil
}

func printArchive(path, name string, stats bool) error {
	archive, err := ndarray.OpenArchive(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	names := archive.Names()
	if name != "" {
		names = []string{name}
	}
	for _, n := range names {
		a, err := archive.Load(n)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s %v\n%v\n", n, a.DType(), a.Shape(), a)
		if stats {
			if err := printStats(a); err != nil {
				a.Release()
				return err
			}
		}
		a.Release()
	}
	return nil
}

// printStats prints the sum of a and, for float arrays, the means along axis 0.
func printStats(a *ndarray.Array) error {
	if !a.DType().Numeric() {
		return nil
	}
	total, err := ndarray.Sum(a)
	if err != nil {
		return err
	}
	fmt.Printf("sum: %v\n", total)

	if a.DType() != ndarray.Float64 && a.DType() != ndarray.Float32 {
		return nil
	}
	mean, err := ndarray.MeanAxis(a, 0, false)
	if err != nil {
		return err
	}
	fmt.Printf("mean: %v\n", mean)
	return nil
}
