package main

import (
	"fmt"
	"os"

	"github.com/example/dats-assistant/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
