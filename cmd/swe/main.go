// Package main provides the swe CLI for inspecting and validating SWE Common
// element definitions.
package main

func main() {
	Execute()
}
