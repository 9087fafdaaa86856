package cli

import (
	"encoding/json"

	"remkit/internal/config"
)

func cmdInit(a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit init")
		a.io.Println("")
		a.io.Println("Write a starter " + config.FileName + " into the working directory.")

		return nil
	}

	path, err := config.Init(a.cfg.EffectiveCwd)
	if err != nil {
		return err
	}

	a.io.Println("wrote", path)

	return nil
}

func cmdPrintConfig(a *app) error {
	formatted, err := json.MarshalIndent(a.cfg, "", "  ")
	if err != nil {
		return err
	}

	a.io.Println(string(formatted))

	a.io.Println("")
	a.io.Println("# Sources:")

	if a.cfg.Sources.Global != "" {
		a.io.Println("#   global:", a.cfg.Sources.Global)
	}

	if a.cfg.Sources.Project != "" {
		a.io.Println("#   project:", a.cfg.Sources.Project)
	}

	if a.cfg.Sources.Global == "" && a.cfg.Sources.Project == "" {
		a.io.Println("#   (using defaults only)")
	}

	return nil
}
