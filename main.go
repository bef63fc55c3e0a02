package main

import "github.com/kmaina/sokoboard/cmd"

func main() {
	cmd.Execute()
}
