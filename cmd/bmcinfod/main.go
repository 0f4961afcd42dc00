package main

import (
	"log"

	"github.com/NVIDIA/bmc-info/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
