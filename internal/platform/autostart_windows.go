//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (item *LoginItem) install() error {
	value := `"` + strings.Trim(item.execPath, `"`) + `"`
	return runReg("add", registryRunKey, "/v", item.name, "/t", "REG_SZ", "/d", value, "/f")
}

func (item *LoginItem) remove() error {
	present, err := item.installed()
	if err != nil || !present {
		return err
	}
	return runReg("delete", registryRunKey, "/v", item.name, "/f")
}

// installed relies on reg query failing for a missing value.
func (item *LoginItem) installed() (bool, error) {
	err := exec.Command("reg", "query", registryRunKey, "/v", item.name).Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return false, fmt.Errorf("reg query: %w", err)
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
