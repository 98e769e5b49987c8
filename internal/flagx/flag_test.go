package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":9090", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":9090"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-a=:9090"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "value starting with dash is not consumed",
			args:    []string{"-a", "-b", "v"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b", "v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x", "-b=y"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", "conf.json", "-a", ":9090"}
		assert.Equal(t, "conf.json", JsonConfigFlags())
	})

	t.Run("long flag equals form", func(t *testing.T) {
		os.Args = []string{"cmd", "--config=other.json"}
		assert.Equal(t, "other.json", JsonConfigFlags())
	})

	t.Run("long flag separate value", func(t *testing.T) {
		os.Args = []string{"cmd", "--config", "other.json"}
		assert.Equal(t, "other.json", JsonConfigFlags())
	})

	t.Run("single dash long form", func(t *testing.T) {
		os.Args = []string{"cmd", "-config", "other.json"}
		assert.Equal(t, "other.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"cmd", "-a", ":9090"}
		assert.Equal(t, "", JsonConfigFlags())
	})
}
