package main

import (
	"os"

	"github.com/camlet-lang/camlet/pkg/cli"
)

func main() {
	os.Exit(cli.Entry(os.Args[1:]))
}
