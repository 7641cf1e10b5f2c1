package main

import "github.com/jsphweid/scoretree/cmd"

func main() {
	cmd.Execute()
}
