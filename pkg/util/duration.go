package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses duration strings, additionally supporting a "d" (day) suffix
// ParseDuration 解析时间区间字符串，额外支持 "d"（天）后缀
// 支持格式：7d（天）、24h（小时）、30m（分钟）、10s（秒）
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return time.Duration(days * 24 * float64(time.Hour)), nil
	}

	return time.ParseDuration(s)
}

// MustParseDuration 解析时间区间，出错时返回默认值
func MustParseDuration(s string, defaultVal time.Duration) time.Duration {
	d, err := ParseDuration(s)
	if err != nil {
		return defaultVal
	}
	return d
}
