// Command tally edits and inspects calculator expressions.
//
// Run without arguments to open the interactive expression field.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
