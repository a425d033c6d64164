package main

import (
	"os"

	"github.com/thenoetrevino/phonebook/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
