package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	datamodel "github.com/cta-obs/datamodel_go/pkg"
)

// datamodel-dump prints the field table of every registered container:
// the same name/default/unit/description view a serializer walks.
func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	configuration, err := LoadConfiguration(*configFilename)
	if err != nil {
		fmt.Println("Error reading configuration file: ", err)
		return
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if configuration.Verbosity > 1 {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(NewHandler(os.Stdout, opts))
	if configuration.Verbosity > 0 {
		printConfiguration(configuration, logger)
	}

	names := configuration.Containers
	if len(names) == 0 {
		names = datamodel.Names()
	}
	logger.Debug(fmt.Sprintf("Dumping %d containers", len(names)), "module", "dump")

	switch configuration.Format {
	case "json":
		err = dumpJSON(names)
	default:
		err = dumpTable(names)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func dumpTable(names []string) error {
	for _, name := range names {
		schema, err := datamodel.Schema(name)
		if err != nil {
			return err
		}
		fmt.Println(name)
		for _, field := range schema {
			unit := field.Unit.String()
			if unit == "" {
				unit = "-"
			}
			fmt.Printf("  %-24s %-5s %-24v %s\n", field.Name, unit, field.Default, field.Description)
		}
		fmt.Println()
	}
	return nil
}

func dumpJSON(names []string) error {
	schemas := make(map[string][]datamodel.FieldSchema, len(names))
	for _, name := range names {
		schema, err := datamodel.Schema(name)
		if err != nil {
			return err
		}
		schemas[name] = schema
	}
	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
