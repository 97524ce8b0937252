package main

import (
	"github.com/eventbyen/eventsync-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
