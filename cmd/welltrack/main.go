package main

import "welltrack/cmd/welltrack/cmd"

func main() {
	cmd.Execute()
}
