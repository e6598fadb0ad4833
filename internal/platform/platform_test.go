package platform_test

import (
	"errors"
	"testing"

	"github.com/wadey/thriftc/internal/platform"
)

func TestResolveExecutableWindows(t *testing.T) {
	id, err := platform.ResolveExecutable("Windows 10", "amd64", "0.5.0")
	if err != nil {
		t.Fatalf("ResolveExecutable() error = %v", err)
	}
	if id != "thrift-0.5.0.exe" {
		t.Errorf("id = %q, want %q", id, "thrift-0.5.0.exe")
	}

	// Architecture is ignored on the Windows family.
	id2, err := platform.ResolveExecutable("Windows Server 2019", "ia64", "0.5.0")
	if err != nil {
		t.Fatalf("ResolveExecutable() error = %v", err)
	}
	if id2 != id {
		t.Errorf("id = %q, want %q", id2, id)
	}
}

func TestResolveExecutableTable(t *testing.T) {
	cases := []struct {
		platform string
		arch     string
		want     string
	}{
		{"Linux", "x86_64", "thrift-0.5.0-linux64"},
		{"Linux", "amd64", "thrift-0.5.0-linux64"},
		{"Linux", "i686", "thrift-0.5.0-linux32"},
		{"Mac OS X", "x86_64", "thrift-0.5.0-osx64"},
		{"FreeBSD", "amd64", "thrift-0.5.0-bsd64"},
		{"OpenBSD", "i386", "thrift-0.5.0-bsd32"},
	}

	for _, tc := range cases {
		got, err := platform.ResolveExecutable(tc.platform, tc.arch, "0.5.0")
		if err != nil {
			t.Errorf("ResolveExecutable(%q, %q) error = %v", tc.platform, tc.arch, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveExecutable(%q, %q) = %q, want %q", tc.platform, tc.arch, got, tc.want)
		}
	}
}

func TestResolveExecutableUnknownPlatform(t *testing.T) {
	_, err := platform.ResolveExecutable("Plan9", "amd64", "0.5.0")
	if !errors.Is(err, platform.ErrUnsupportedPlatform) {
		t.Errorf("error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestResolveExecutableUnknownArch(t *testing.T) {
	_, err := platform.ResolveExecutable("Linux", "sparc", "0.5.0")
	if !errors.Is(err, platform.ErrUnsupportedArch) {
		t.Errorf("error = %v, want ErrUnsupportedArch", err)
	}
}
