package main

import (
	"github.com/chainlens/explorer/cmd"
)

func main() {
	cmd.Execute()
}
