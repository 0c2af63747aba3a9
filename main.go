package main

import "flip-advisor/cli"

func main() {
	cli.Execute()
}
