package main

import (
	"github.com/joho/godotenv"
	"github.com/soumya721644/docqa-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; keys can come from the real environment.
	_ = godotenv.Load()
}
