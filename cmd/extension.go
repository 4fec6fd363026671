package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix is prepended to an unknown subcommand to find the binary implementing it.
const ExtensionPrefix = "ab-"

// RunExtension attempts to find and execute an external ab-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved global configuration is passed down as ASSETBOOK_* variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global configuration as environment entries.
// Values that could not be resolved are passed as given.
func extensionEnv() []string {
	cfg, _ := loadConfig()
	return []string{
		EnvAPIURL + "=" + cfg.api,
		EnvCurrency + "=" + cfg.currency,
		EnvVerbose + "=" + strconv.FormatBool(cfg.verbose),
	}
}
