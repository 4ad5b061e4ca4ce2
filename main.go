package main

import "github.com/jsphweid/musicability/cmd"

func main() {
	cmd.Execute()
}
