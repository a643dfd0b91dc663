package main

import "github.com/OpenTraceLab/OpenTraceBRD/cmd/brdview/cmd"

func main() {
	cmd.Execute()
}
