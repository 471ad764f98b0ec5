package main

import "github.com/fogbyte/vbafog/cmd"

func main() {
	cmd.Execute()
}
