package main

import "social-upload/cmd"

func main() {
	cmd.Execute()
}
