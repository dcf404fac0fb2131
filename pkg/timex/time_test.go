package timex

import (
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	// Test Unix()
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	// Test UnixMilli()
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	tt := Time(time.Date(2024, 1, 1, 12, 30, 45, 0, time.Local))

	data, err := tt.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `"2024-01-01 12:30:45"` {
		t.Errorf("MarshalJSON = %s, want %q", data, "2024-01-01 12:30:45")
	}

	var back Time
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if back.Unix() != tt.Unix() {
		t.Errorf("round trip mismatch: got %v, want %v", back, tt)
	}
}

func TestTime_Scan(t *testing.T) {
	var tt Time
	if err := tt.Scan("2024-01-01 12:30:45"); err != nil {
		t.Fatalf("Scan string failed: %v", err)
	}
	if tt.String() != "2024-01-01 12:30:45" {
		t.Errorf("Scan string = %s, want 2024-01-01 12:30:45", tt)
	}

	now := time.Now()
	if err := tt.Scan(now); err != nil {
		t.Fatalf("Scan time.Time failed: %v", err)
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("Scan time.Time = %v, want %v", tt.Time(), now)
	}

	// NULL 列不改变原值
	if err := tt.Scan(nil); err != nil {
		t.Fatalf("Scan nil failed: %v", err)
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("Scan nil should keep value, got %v", tt.Time())
	}
}
