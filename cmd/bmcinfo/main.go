package main

import "github.com/NVIDIA/bmc-info/pkg/cli"

func main() {
	cli.Execute()
}
