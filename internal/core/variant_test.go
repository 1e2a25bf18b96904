package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"dkp-bootstrap/internal/types"
)

func TestHostVariant(t *testing.T) {
	tests := []struct {
		name string
		host types.HostEnvironment
		want string
	}{
		{
			name: "plain linux",
			host: types.HostEnvironment{},
			want: "dkp-linux",
		},
		{
			name: "musl libc",
			host: types.HostEnvironment{UsesMuslLibc: true},
			want: "dkp-linux-musl",
		},
		{
			name: "windows compat layer",
			host: types.HostEnvironment{IsWindowsCompat: true},
			want: "dkp-windows",
		},
		{
			name: "windows wins over musl",
			host: types.HostEnvironment{IsWindowsCompat: true, UsesMuslLibc: true},
			want: "dkp-windows",
		},
		{
			name: "other fields do not matter",
			host: types.HostEnvironment{OSFamily: types.OSFamilyDebian, HasPacman: true},
			want: "dkp-linux",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HostVariant(tt.host)
			if diff := cmp.Diff(tt.want, got.Name); diff != "" {
				t.Fatalf("unexpected variant (-want +got):\n%s", diff)
			}
			assert.NotEmpty(t, got.ServerTemplate)
		})
	}
}

func TestLibraryRepository(t *testing.T) {
	entry := LibraryRepository()
	assert.Equal(t, "dkp-libs", entry.Name)
	assert.Equal(t, "https://pkg.devkitpro.org/packages", entry.ServerTemplate)
}

func TestVariantServersCarryArchPlaceholder(t *testing.T) {
	for _, host := range []types.HostEnvironment{
		{},
		{UsesMuslLibc: true},
		{IsWindowsCompat: true},
	} {
		entry := HostVariant(host)
		assert.Contains(t, entry.ServerTemplate, "$arch", "variant %s", entry.Name)
	}
}
