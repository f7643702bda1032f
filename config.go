package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Configuration struct {
	Containers []string `json:"containers"`
	Format     string   `json:"format"`
	Verbosity  int      `json:"verbosity"`
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.Containers = []string{}
	config.Format = "table"
	config.Verbosity = 0

	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config Configuration, logger *slog.Logger) {
	logger.Info(fmt.Sprintf("Containers: %s", strings.Join(config.Containers, ", ")), "module", "config")
	logger.Info(fmt.Sprintf("Format: %s", config.Format), "module", "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "module", "config")
}
