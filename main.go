// Public domain.

package main

import "github.com/soniakeys/gaiadist/internal/distprog"

func main() {
	distprog.Main()
}
