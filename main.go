package main

import "github.com/mediafmt/mediafmt/internal/cli"

func main() {
	cli.Execute()
}
