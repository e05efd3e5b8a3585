package main

import (
	"fmt"
	"os"

	"github.com/marcelsud/hookview/seed"
)

/* validate-endpoints - Standalone CLI tool to validate endpoints.yaml
 * Usage: go run cmd/validate-endpoints/main.go [endpoints.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	endpointsFile := "endpoints.yaml"
	if len(os.Args) > 1 {
		endpointsFile = os.Args[1]
	}

	fmt.Printf("Validating endpoints file: %s\n", endpointsFile)

	loader := seed.NewLoader()
	if err := loader.Load(endpointsFile); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	urls := loader.List()
	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d endpoint(s):\n", len(urls))
	for i, url := range urls {
		fmt.Printf("%d. %s\n", i+1, url)
	}
}
