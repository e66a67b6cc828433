// Command tsdl parses a single TSDL metadata file and prints a short
// summary of the resulting document, grounded on original_source/test.py
// (read file arg, parse, print a couple of fields). Consuming the
// document beyond this summary is an external collaborator's job
// (spec.md §1).
package main

import (
	"fmt"
	"os"

	"github.com/efficios/tsdl-go"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <metadata-file>\n", os.Args[0])
		os.Exit(2)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	doc, err := tsdl.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if doc.Trace != nil {
		fmt.Printf("trace: version %d.%d\n", doc.Trace.Major, doc.Trace.Minor)
	} else {
		fmt.Println("trace: (none)")
	}
	fmt.Printf("clocks: %d\n", len(doc.Clocks()))
	for _, c := range doc.Clocks() {
		fmt.Printf("  %s (freq=%d)\n", c.Name, c.Freq)
	}
	fmt.Printf("streams: %d\n", len(doc.Streams()))
	for _, s := range doc.Streams() {
		fmt.Printf("  stream %d: %d events\n", s.ID, len(s.Events))
	}
}
