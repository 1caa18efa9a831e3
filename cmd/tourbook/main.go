package main

import "github.com/aalvaropc/tourbook/internal/cli"

func main() {
	cli.Execute()
}
