package main

import "reldb/cmd"

func main() {
	cmd.Execute()
}
