package main

import (
	"os"

	"github.com/harrison/archive/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.DefaultApp(), os.Args[1:]))
}
