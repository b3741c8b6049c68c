// Package main is the entry point for the bundlestat CLI.
package main

import "github.com/ajxudir/bundlestat/cmd"

func main() {
	cmd.Execute()
}
