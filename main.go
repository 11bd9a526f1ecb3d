package main

import "github.com/emrgen/resourcesync/cmd"

func main() {
	cmd.Execute()
}
