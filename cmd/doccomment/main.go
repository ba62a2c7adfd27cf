package main

import "doccomment/internal/cli"

func main() {
	cli.Execute()
}
