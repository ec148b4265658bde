package main

import "nathanbeddoewebdev/polar/cmd"

func main() {
	cmd.Execute()
}
