package main

import (
	"lending/cmd"
)

var (
	version string
	commit  string
)

func main() {
	cmd.Execute(version + "-" + commit)
}
