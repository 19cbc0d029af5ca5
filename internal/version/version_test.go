package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		version                string
		major, minor, fix, pre int
	}{
		{"1.2.3", 1, 2, 3, 0},
		{"0.10.0-pr4", 0, 10, 0, 4},
		{"2.0", 2, 0, 0, 0},
		{"garbage", 0, 0, 0, 0},
	}
	for _, test := range tests {
		major, minor, fix, pre := parse(test.version)
		if major != test.major || minor != test.minor || fix != test.fix || pre != test.pre {
			t.Fatalf(
				"%s: expected %d.%d.%d-%d, got %d.%d.%d-%d", test.version,
				test.major, test.minor, test.fix, test.pre, major, minor, fix, pre,
			)
		}
	}
}

func TestEmbeddedVersion(t *testing.T) {
	if VERSION == "" {
		t.Fatal("expected an embedded version")
	}
}
