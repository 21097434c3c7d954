package main

import "github.com/modernice/todo/cli"

func main() {
	cli.Main()
}
