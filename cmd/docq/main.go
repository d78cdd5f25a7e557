// Command docq answers natural-language questions over a document
// corpus, selecting and budgeting the relevant slice for an LLM.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docq-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
