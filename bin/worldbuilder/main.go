package main

import (
	"log"

	"github.com/ashesandaether/worldbuilder/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
