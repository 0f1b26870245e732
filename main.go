package main

import "github.com/liamg/sonar/cmd"

func main() {
	cmd.Execute()
}
