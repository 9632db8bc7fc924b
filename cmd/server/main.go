package main

import "github.com/netra/gallery/cmd/server/cmd"

func main() {
	cmd.Execute()
}
