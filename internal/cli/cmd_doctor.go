package cli

import (
	"context"

	"remkit/internal/binsec"
)

func cmdDoctor(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit doctor")
		a.io.Println("")
		a.io.Println("Check whether the native helper and Reminders automation")
		a.io.Println("are usable. Exits non-zero when anything needs attention.")

		return nil
	}

	helperPath := a.client.HelperPath()
	a.io.Println("helper:", helperPath)

	if err := binsec.Validate(helperPath, binsec.ConfigForPosture(a.cfg.Posture, binsec.ProjectRoot(a.cfg.EffectiveCwd), "")); err != nil {
		a.io.Warn("helper binary failed validation", err.Error())
	}

	readiness := a.client.CheckPermissions(ctx)

	printProbe(a, "data access", readiness.Helper.Granted, readiness.Helper.Error)
	printProbe(a, "automation", readiness.Automation.Granted, readiness.Automation.Error)

	if readiness.Ready() {
		a.io.Println("ready")

		return nil
	}

	a.io.Warn("not ready", readiness.Guidance())

	return nil
}

func printProbe(a *app, name string, granted bool, detail string) {
	if granted {
		a.io.Println(name + ": ok")

		return
	}

	if detail == "" {
		detail = "failed"
	}

	a.io.Println(name + ": " + detail)
}
