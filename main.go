package main

import "github.com/inovacc/tuislider/cmd"

func main() {
	cmd.Execute()
}
