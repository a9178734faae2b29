package main

import (
	"dex-chunker/cli"
)

func main() {
	cli.Start()
}
