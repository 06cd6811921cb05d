package main

import (
	"log"

	"resource-planner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("planner: %v", err)
	}
}
