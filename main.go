// Package main is the entry point for the veil CLI.
package main

import "veil.dev/pkg/veil/cmd"

func main() {
	cmd.Execute()
}
