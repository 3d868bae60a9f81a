package main

import (
	"fmt"
	"os"

	"github.com/fgeck/pihub/internal/config"
	"github.com/fgeck/pihub/internal/services/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the targets file",
	Long:  `Load the targets file and check every MAC address without serving or sending anything.`,
	RunE:  validateTargets,
}

func validateTargets(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(targetsFile); os.IsNotExist(err) {
		log.Error().Str("file", targetsFile).Msg("targets file not found")
		return fmt.Errorf("targets file not found: %s", targetsFile)
	}

	registry := config.NewParser(log.Logger).LoadFile(targetsFile)

	fmt.Printf("Loaded %d target(s) from %s\n", registry.Len(), targetsFile)
	fmt.Println()

	invalid := 0
	for _, name := range registry.Names() {
		target, _ := registry.Resolve(name)
		if _, err := wol.ParseMAC(target.MAC); err != nil {
			fmt.Printf("  %-20s %s  INVALID\n", name, target.MAC)
			invalid++
			continue
		}
		fmt.Printf("  %-20s %s\n", name, target.MAC)
	}

	if invalid > 0 {
		return fmt.Errorf("%d target(s) have an invalid MAC address", invalid)
	}

	fmt.Println()
	fmt.Println("Targets file is valid!")
	return nil
}
