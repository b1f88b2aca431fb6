// Package sysinfo gathers the host facts displayed by ferris-fetch:
// OS, kernel, uptime, shell, CPU, memory, and root-disk usage.
// Collection is best-effort; every field independently falls back to a
// placeholder or zero value, so a missing fact can never fail a run.
package sysinfo

import (
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/MCSeekeri/ferris-fetch/logging"
)

// Unknown is the placeholder for any fact the host refused to reveal.
const Unknown = "Unknown"

// SystemFacts is an immutable snapshot of the host, collected once per
// run and handed read-only to the render pipeline.
type SystemFacts struct {
	// Hostname is the machine's network name.
	Hostname string

	// Username is the invoking user's login name.
	Username string

	// OS is the platform name and version, e.g. "ubuntu 24.04".
	OS string

	// Kernel is the running kernel version.
	Kernel string

	// UptimeSeconds is the host uptime. Zero when unavailable.
	UptimeSeconds uint64

	// Shell is the basename of the user's login shell.
	Shell string

	// CPUModel is the processor brand string.
	CPUModel string

	// CPUCores is the logical core count, always at least 1.
	CPUCores int

	// MemoryUsed and MemoryTotal are RAM usage in bytes. MemoryTotal is
	// zero only when the query failed, and then MemoryUsed is zero too.
	MemoryUsed  uint64
	MemoryTotal uint64

	// DiskUsed and DiskTotal are root-filesystem usage in bytes, both
	// zero when the query failed.
	DiskUsed  uint64
	DiskTotal uint64
}

// Collect gathers a best-effort snapshot of the host.
//
// Returns:
//   - A pointer to a populated SystemFacts struct. Fields whose
//     underlying query failed hold the Unknown placeholder or zero;
//     failures are logged at debug level and never propagated.
func Collect() *SystemFacts {
	log := logging.GetLogger("sysinfo")

	facts := &SystemFacts{
		Hostname: Unknown,
		Username: Unknown,
		OS:       Unknown,
		Kernel:   Unknown,
		Shell:    Unknown,
		CPUModel: Unknown,
		CPUCores: 1,
	}

	if name, err := os.Hostname(); err == nil && name != "" {
		facts.Hostname = name
	} else if err != nil {
		log.Debug().Err(err).Msg("hostname query failed")
	}

	facts.Username = username()
	facts.Shell = shellName()

	if info, err := host.Info(); err == nil {
		if info.Platform != "" {
			facts.OS = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		}
		if info.KernelVersion != "" {
			facts.Kernel = info.KernelVersion
		}
		facts.UptimeSeconds = info.Uptime
	} else {
		log.Debug().Err(err).Msg("host query failed")
		if secs, ok := uptimeFallback(); ok {
			facts.UptimeSeconds = secs
		}
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		facts.CPUModel = strings.TrimSpace(infos[0].ModelName)
	} else if err != nil {
		log.Debug().Err(err).Msg("cpu query failed")
	}
	if n := runtime.NumCPU(); n > 0 {
		facts.CPUCores = n
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		facts.MemoryUsed = vm.Used
		facts.MemoryTotal = vm.Total
	} else {
		log.Debug().Err(err).Msg("memory query failed")
	}

	if usage, err := disk.Usage(rootPath()); err == nil {
		facts.DiskUsed = usage.Used
		facts.DiskTotal = usage.Total
	} else {
		log.Debug().Err(err).Msg("disk query failed")
	}

	return facts
}

// username resolves the invoking user, preferring the account database
// over environment variables.
func username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user.
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		if name != "" {
			return name
		}
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return Unknown
}

// shellName returns the basename of $SHELL, falling back to $COMSPEC so
// Windows hosts report cmd.exe or powershell.exe.
func shellName() string {
	path := os.Getenv("SHELL")
	if path == "" {
		path = os.Getenv("COMSPEC")
	}
	if path == "" {
		return Unknown
	}
	path = strings.ReplaceAll(path, `\`, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return Unknown
	}
	return path
}

// rootPath is the filesystem whose usage is reported as "Disk".
func rootPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}
