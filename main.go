package main

import "github.com/inovacc/ghsearch/cmd"

func main() {
	cmd.Execute()
}
