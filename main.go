package main

import "github.com/theledgerdev/runway/cmd"

func main() {
	cmd.Execute()
}
