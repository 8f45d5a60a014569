package main

import "github.com/devicelab-dev/droidctl/pkg/cli"

func main() {
	cli.Execute()
}
