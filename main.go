package main

import "github.com/julienpequegnot/emolex/cmd"

func main() {
	cmd.Execute()
}
