package main

import "hearth-mirror/cmd"

func main() {
	cmd.Execute()
}
