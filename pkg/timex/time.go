// Package timex 提供数据库与 JSON 共用的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeLayout 序列化使用的时间格式
const TimeLayout = "2006-01-02 15:04:05"

// Time 包装 time.Time，JSON 与数据库读写统一使用 TimeLayout 格式
type Time time.Time

// Now 获取当前时间
func Now() Time {
	return Time(time.Now())
}

// Time 转换回 time.Time
func (t Time) Time() time.Time {
	return time.Time(t)
}

// IsZero 判断是否为零值时间
func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// Unix 返回 Unix 时间戳（秒）
func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

// UnixMilli 返回 Unix 时间戳（毫秒）
func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

// UnixMicro 返回 Unix 时间戳（微秒）
func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

// UnixNano 返回 Unix 时间戳（纳秒）
func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

// After 判断 t 是否在 u 之后
func (t Time) After(u Time) bool {
	return time.Time(t).After(time.Time(u))
}

// Before 判断 t 是否在 u 之前
func (t Time) Before(u Time) bool {
	return time.Time(t).Before(time.Time(u))
}

// String 实现 fmt.Stringer
func (t Time) String() string {
	return time.Time(t).Format(TimeLayout)
}

// MarshalJSON 实现 json.Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(TimeLayout))), nil
}

// UnmarshalJSON 实现 json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+TimeLayout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value 实现 driver.Valuer，写入数据库
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan 实现 sql.Scanner，从数据库读取
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot convert %v to timex.Time", v)
	}
}

// sqlite 以文本存储时间，不同驱动格式不一，依次尝试
var scanLayouts = []string{
	TimeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	time.RFC3339,
}

func (t *Time) scanString(s string) error {
	if s == "" {
		return nil
	}
	var firstErr error
	for _, layout := range scanLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			*t = Time(parsed)
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
