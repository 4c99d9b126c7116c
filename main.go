package main

import "htmx-greeter/cmd"

func main() {
	cmd.Execute()
}
