package main

import "github.com/wonderland-desktop/wonderctl/cmd"

func main() {
	cmd.Execute()
}
