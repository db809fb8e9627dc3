package main

import "github.com/investor-properties-ny/ms-go-investor-subscriptions/cmd"

func main() {
	cmd.Execute()
}
