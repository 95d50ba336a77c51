package main

import (
	"channel-metrics/internal/cli"
)

func main() {
	cli.Execute()
}
