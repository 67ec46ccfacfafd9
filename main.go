package main

import "github.com/alexibraimov/sophifs/cmd"

func main() {
	cmd.Execute()
}
