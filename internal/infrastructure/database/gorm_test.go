package database

import (
	"strings"
	"testing"

	"furniture_warehouse/internal/infrastructure/config"
)

func TestSQLiteDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "warehouse.db", want: "warehouse.db?_busy_timeout=5000"},
		{in: "file:test?mode=memory&cache=shared", want: "file:test?mode=memory&cache=shared&_busy_timeout=5000"},
		{in: "warehouse.db?_busy_timeout=100", want: "warehouse.db?_busy_timeout=100"},
	}
	for _, tc := range cases {
		if got := SQLiteDSN(tc.in); got != tc.want {
			t.Fatalf("SQLiteDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskDSN(t *testing.T) {
	kv := MaskDSN("host=db user=app password=hunter2 dbname=warehouse")
	if strings.Contains(kv, "hunter2") || !strings.Contains(kv, "password=***") {
		t.Fatalf("password not masked: %q", kv)
	}
	u := MaskDSN("postgres://app:hunter2@db:5432/warehouse")
	if strings.Contains(u, "hunter2") {
		t.Fatalf("password not masked: %q", u)
	}
	if got := MaskDSN("warehouse.db"); got != "warehouse.db" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db, err := Connect(config.Config{DBDriver: config.DriverSQLite, DBDSN: "file:connect_test?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Fatalf("unexpected result %d err=%v", one, err)
	}
}

func TestConnect_UnknownDriver(t *testing.T) {
	if _, err := Connect(config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatalf("expected error")
	}
}
