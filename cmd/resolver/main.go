// Package main provides a lookup tool for the country-code resolver chain.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"bfpogen/internal/country"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: resolver <country name> [<country name> ...]")
		fmt.Fprintln(os.Stderr, "       resolver -        (read names from stdin, one per line)")
	}

	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if len(args) == 1 && args[0] == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lookup(scanner.Text())
		}

		return
	}

	for _, name := range args {
		lookup(name)
	}
}

func lookup(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	if code, ok := country.Resolve(name); ok {
		fmt.Printf("%s\t%s\n", name, code)
	} else {
		fmt.Printf("%s\t(unresolved)\n", name)
	}
}
