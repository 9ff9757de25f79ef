package main

import "github.com/Vinay-014/GoodFoods/cmd"

func main() {
	cmd.Execute()
}
