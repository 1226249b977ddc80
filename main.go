package main

import "github.com/srinikhil9/Mock-Interview-System/internal/cli"

func main() {
	cli.Execute()
}
