// Command fhtgen writes the straight-line small-size Hadamard codelets.
//
// Usage (from internal/codelet):
//
//	go run ../../cmd/fhtgen -output codelet_gen.go
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	var (
		output = flag.String("output", "codelet_gen.go", "output file")
		pkg    = flag.String("package", "codelet", "package name of the generated file")
		maxLog = flag.Int("max-log", 7, "largest log2 size to generate")
	)
	flag.Parse()

	src, err := generate(*pkg, *maxLog)
	if err != nil {
		log.Fatalf("fhtgen: %v", err)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("fhtgen: %v", err)
	}
}
