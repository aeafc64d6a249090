package main

import "github.com/apploc/apploc-cli/cmd"

func main() {
	cmd.Execute()
}
