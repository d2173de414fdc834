package main

import "github.com/cubetools/scramble/internal/cli"

func main() {
	cli.Execute()
}
