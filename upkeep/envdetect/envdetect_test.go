package envdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeRoot(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(filepath.Join(root, f)), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDetectSingleManager(t *testing.T) {
	cases := []struct {
		marker string
		want   ManagerKind
	}{
		{"etc/pacman.d", Pacman},
		{"etc/apt", Apt},
		{"etc/apk", Apk},
		{"etc/dnf", Dnf},
	}

	for _, c := range cases {
		root := fakeRoot(t, []string{c.marker}, nil)
		env, err := Detect(root)
		assert.NoError(t, err)
		assert.Equal(t, c.want, env.Manager)
		assert.Equal(t, Sudo, env.Escalator)
	}
}

func TestDetectPriorityOrder(t *testing.T) {
	// With every marker present, pacman wins; removing markers one by
	// one walks down the priority chain.
	root := fakeRoot(t, []string{"etc/pacman.d", "etc/apt", "etc/apk", "etc/dnf"}, nil)

	order := []ManagerKind{Pacman, Apt, Apk, Dnf}
	remove := []string{"etc/pacman.d", "etc/apt", "etc/apk"}

	for i, want := range order {
		env, err := Detect(root)
		assert.NoError(t, err)
		assert.Equal(t, want, env.Manager)
		if i < len(remove) {
			if err := os.RemoveAll(filepath.Join(root, remove[i])); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestDetectNoManager(t *testing.T) {
	root := fakeRoot(t, nil, nil)
	_, err := Detect(root)
	assert.ErrorIs(t, err, ErrNoPackageManager)
}

func TestDetectDoas(t *testing.T) {
	root := fakeRoot(t, []string{"etc/apt"}, []string{"etc/doas.conf"})
	env, err := Detect(root)
	assert.NoError(t, err)
	assert.Equal(t, Doas, env.Escalator)
}
