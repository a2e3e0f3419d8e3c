package main

import (
	"github.com/joho/godotenv"

	"github.com/LegacyCodeHQ/playground/cmd"
)

func main() {
	// A .env file is optional; OUT_DIR usually comes from the build.
	_ = godotenv.Load()

	cmd.Execute()
}
