package main

import "daogen/cmd"

func main() {
	cmd.Execute()
}
