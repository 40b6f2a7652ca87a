package main

import (
	"github.com/fontcraft/chat-core/cmd"
)

func main() {
	cmd.Execute()
}
