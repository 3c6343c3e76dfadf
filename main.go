package main

import "github.com/eng618/fifteentrace/cmd"

func main() {
	cmd.Execute()
}
