package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
)

const (
	EnvPlanFile   = "FPL_PLAN_FILE"
	EnvPricesFile = "FPL_PRICES_FILE"
)

// RunExtension attempts to find and execute an external fpl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fpl-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables so extensions see the
	// same files as the main command.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvPlanFile+"="+*planFile)
	cmd.Env = append(cmd.Env, EnvPricesFile+"="+*pricesFile)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
