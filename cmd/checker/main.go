// Package main provides the catalog checker: validates an existing XML
// catalog against the schema rules, the ordering and uniqueness
// invariants, and the generation-block hash.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bfpogen/internal/models"
	"bfpogen/internal/schema"
	"bfpogen/internal/serializer"
	"bfpogen/pkg/metadata"
)

func main() {
	input := flag.String("input", "", "Path to catalog XML file")
	skipHash := flag.Bool("skip-hash", false, "Skip generation-block hash verification")
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: checker -input <catalog.xml> [-skip-hash]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("failed to read catalog: %v", err)
	}

	if !*skipHash {
		if ok, verifyErr := metadata.Verify(content); !ok {
			log.Fatalf("generation block verification failed: %v", verifyErr)
		}

		fmt.Println("generation block: ok")
	}

	_, body := metadata.Extract(content)

	doc, err := serializer.Unmarshal(body)
	if err != nil {
		log.Fatalf("failed to parse catalog: %v", err)
	}

	checker := schema.NewChecker()
	violations := 0

	seen := make(map[string]bool, len(doc.Addresses))
	lastNum := -1

	for i := range doc.Addresses {
		entry := &doc.Addresses[i]

		if checkErr := checker.CheckEntry(entry); checkErr != nil {
			violations++

			fmt.Fprintf(os.Stderr, "entry %d: %v\n", i, checkErr)

			continue
		}

		key := entry.BfpoNum
		if entry.BoxNum != nil {
			key = fmt.Sprintf("%s#%d", key, *entry.BoxNum)
		}

		if seen[key] {
			violations++

			fmt.Fprintf(os.Stderr, "entry %d: duplicate designator %s\n", i, key)
		}

		seen[key] = true

		addr := models.Address{Designator: entry.BfpoNum}
		if num, ok := addr.DesignatorNumber(); ok {
			if num < lastNum {
				violations++

				fmt.Fprintf(os.Stderr, "entry %d: out of order (%d after %d)\n", i, num, lastNum)
			}

			lastNum = num
		}
	}

	fmt.Printf("entries: %d, violations: %d\n", len(doc.Addresses), violations)

	if violations > 0 {
		os.Exit(1)
	}
}
