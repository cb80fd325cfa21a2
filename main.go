package main

import "korea-realestate/cmd"

func main() {
	cmd.Execute()
}
