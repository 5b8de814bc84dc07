package main

import "github.com/KaramelBytes/carsales-cli/cmd"

func main() {
	cmd.Execute()
}
