package sysinfo

import "testing"

func TestShellName(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	if got := shellName(); got != "zsh" {
		t.Fatalf("shellName for unix path = %q; want %q", got, "zsh")
	}

	t.Setenv("SHELL", "")
	t.Setenv("COMSPEC", `C:\Windows\system32\cmd.exe`)
	if got := shellName(); got != "cmd.exe" {
		t.Fatalf("shellName for COMSPEC path = %q; want %q", got, "cmd.exe")
	}

	t.Setenv("COMSPEC", "")
	if got := shellName(); got != Unknown {
		t.Fatalf("shellName with no shell env = %q; want %q", got, Unknown)
	}
}

func TestCollectLeavesNoGaps(t *testing.T) {
	facts := Collect()
	if facts == nil {
		t.Fatal("Collect returned nil")
	}
	for name, v := range map[string]string{
		"Hostname": facts.Hostname,
		"Username": facts.Username,
		"OS":       facts.OS,
		"Kernel":   facts.Kernel,
		"Shell":    facts.Shell,
		"CPUModel": facts.CPUModel,
	} {
		if v == "" {
			t.Fatalf("Collect left %s empty; want at least the placeholder", name)
		}
	}
	if facts.CPUCores < 1 {
		t.Fatalf("Collect reported %d CPU cores; want at least 1", facts.CPUCores)
	}
	if facts.MemoryUsed > facts.MemoryTotal {
		t.Fatalf("memory used %d exceeds total %d", facts.MemoryUsed, facts.MemoryTotal)
	}
	if facts.DiskUsed > facts.DiskTotal {
		t.Fatalf("disk used %d exceeds total %d", facts.DiskUsed, facts.DiskTotal)
	}
}
