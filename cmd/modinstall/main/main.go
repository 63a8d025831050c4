package main

import (
	"os"

	"github.com/arthur-debert/modinstall/cmd/modinstall"
)

func main() {
	os.Exit(modinstall.Execute())
}
