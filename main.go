package main

import (
	"github.com/joho/godotenv"
	"github.com/nikogura/resume-forge/cmd"
)

func main() {
	// A .env in the working directory is optional.
	_ = godotenv.Load()

	cmd.Execute()
}
