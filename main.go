// Package main is the entry point for lifo.
package main

import (
	"github.com/lifo-cli/lifo/cmd"
	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
