package main

import "github.com/goulu/goulib/cmd/goulib/cmd"

func main() {
	cmd.Execute()
}
