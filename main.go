package main

import "globetrotter/cmd"

func main() {
	cmd.Execute()
}
