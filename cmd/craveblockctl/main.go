package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/limbo/craveblock/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
