// Package main is the entry point for the cpre CLI.
package main

import "github.com/mouse-blink/cpre/cmd"

func main() {
	cmd.Execute()
}
