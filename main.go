package main

import "github.com/inovacc/afscreen/cmd"

func main() {
	cmd.Execute()
}
