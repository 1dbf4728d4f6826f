package main

import "github.com/dixonmyles/ubuntu-advantage-client/cmd"

// Version can be set during build with -ldflags.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
