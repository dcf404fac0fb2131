package util

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SysInfo 系统运行时信息
type SysInfo struct {
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
	NumCPU        int     `json:"numCpu"`
	NumGoroutine  int     `json:"numGoroutine"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemTotal      uint64  `json:"memTotal"`
	MemUsed       uint64  `json:"memUsed"`
	MemPercent    float64 `json:"memPercent"`
	UptimeSeconds uint64  `json:"uptimeSeconds"`
}

// GetSysInfo collects host and runtime metrics for the private status endpoint
// GetSysInfo 采集主机与运行时指标，用于私有状态接口
func GetSysInfo() *SysInfo {
	info := &SysInfo{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if hostInfo, err := host.Info(); err == nil {
		info.Hostname = hostInfo.Hostname
		info.UptimeSeconds = hostInfo.Uptime
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemTotal = vm.Total
		info.MemUsed = vm.Used
		info.MemPercent = vm.UsedPercent
	}

	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		info.CPUPercent = percents[0]
	}

	return info
}
