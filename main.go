// main is the entry point for the ypindex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/seojoon/ypindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
