package main

import "github.com/OpenTraceLab/kicad2ergogen/cmd/kicad2ergogen/cmd"

func main() {
	cmd.Execute()
}
