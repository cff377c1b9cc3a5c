package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

func main() {
	// An optional .env supplies IMPOSTER_* variables for local runs
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
