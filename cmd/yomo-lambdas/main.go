package main

import "github.com/yomorun/yomo-lambdas/cli"

func main() {
	cli.Execute()
}
