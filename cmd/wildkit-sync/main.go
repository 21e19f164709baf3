package main

import "github.com/paulsmith/wildkit-sync/internal/cli"

func main() {
	cli.Execute()
}
