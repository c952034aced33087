package main

import "spoolq/cmd"

func main() {
	cmd.Execute()
}
