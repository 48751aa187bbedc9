package main

import "clip-cutter/cmd"

func main() {
	cmd.Execute()
}
