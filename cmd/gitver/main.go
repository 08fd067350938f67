package main

import "github.com/oshokin/gitver/cmd/gitver/cmd"

func main() {
	cmd.Execute()
}
