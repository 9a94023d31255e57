package main

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"

	"goshell/pkg/lib"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print host and process diagnostics useful when goshell misbehaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

// runDoctor reports the handful of facts worth knowing when a raw-mode
// session misbehaves: what host it's running under, the current
// process's own resource footprint, and whether stdin is a terminal.
func runDoctor() error {
	info, err := host.Info()
	if err != nil {
		return fmt.Errorf("host info: %w", err)
	}
	fmt.Printf("host:     %s (%s %s)\n", info.Hostname, info.Platform, info.KernelVersion)
	fmt.Printf("uptime:   %ds\n", info.Uptime)

	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return fmt.Errorf("process info: %w", err)
	}
	if pct, err := self.CPUPercent(); err == nil {
		fmt.Printf("cpu:      %.2f%%\n", pct)
	}
	if mem, err := self.MemoryInfo(); err == nil {
		fmt.Printf("rss:      %d KB\n", mem.RSS/1024)
	}
	if isatty := isTerminal(os.Stdin); !isatty {
		lib.Warnf("stdin is not a terminal — raw-mode line editing requires one")
	}
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
