package main

import "kestrelc/cmd"

func main() {
	cmd.Execute()
}
