// Package main provides the ndarray command line tool.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndarray: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "demo":
		err = runDemo(args)
	case "info":
		err = runInfo(args)
	case "convert":
		err = runConvert(args)
	case "print":
		err = runPrint(args)
	case "bench":
		err = runBench(args)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		log.Fatalf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("ndarray - N-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                          Show version")
	fmt.Println("  demo [-seed N]                   Run the array walkthrough")
	fmt.Println("  info <file.nda>                  List arrays in an archive and verify its checksum")
	fmt.Println("  convert [-dtype T] [-name N] <in.csv> <out.nda>")
	fmt.Println("                                   Convert a CSV matrix into an archive")
	fmt.Println("  print [-dtype T] [-name N] [-stats] <file>")
	fmt.Println("                                   Print a CSV matrix or archived array")
	fmt.Println("  bench [-size N] [-duration D]    Measure matrix product throughput")
}
