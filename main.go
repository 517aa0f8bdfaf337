package main

import "collector-stats/cmd"

func main() {
	cmd.Execute()
}
