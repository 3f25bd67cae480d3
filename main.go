package main

import "guide-sync/cmd"

func main() {
	cmd.Execute()
}
