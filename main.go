package main

import "github.com/aburd/mal/cmd"

func main() {
	cmd.Execute()
}
