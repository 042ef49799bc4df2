package main

import (
	"github.com/charmbracelet/capitalize/internal/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cmd.Execute()
}
