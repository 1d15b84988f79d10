package main

import "github.com/seashell-sh/seashell/cmd"

func main() {
	cmd.Execute()
}
