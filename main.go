package main

import "msforge/cmd"

func main() {
	cmd.Execute()
}
