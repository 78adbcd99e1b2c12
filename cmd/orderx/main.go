// Command orderx renumbers and inserts numerically prefixed directory entries
package main

import (
	"os"

	"github.com/boostgo/orderx/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
