package main

import "jsconfig-gen/internal/cli"

func main() {
	cli.Execute()
}
