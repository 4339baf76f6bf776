package main

import "github.com/openbr/plugin-docs/cmd"

func main() {
	cmd.Execute()
}
