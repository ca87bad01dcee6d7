package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-a", ":8080", "-x", "other"},
			allowedFlags: []string{"-a", "--address"},
			want:         []string{"-a", ":8080"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--address=:9090", "-x", "other"},
			allowedFlags: []string{"-a", "--address"},
			want:         []string{"--address=:9090"},
		},
		{
			name:         "both short and long present, preserve order",
			args:         []string{"--address=:1", "-a", ":2", "-x", "1"},
			allowedFlags: []string{"-a", "--address"},
			want:         []string{"--address=:1", "-a", ":2"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a", "--address"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-a"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "do not treat next dash-starting token as value",
			args:         []string{"-a", "-d"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", "-d"},
		},
		{
			name:         "multiple allowed flags kept",
			args:         []string{"-a", ":8080", "-d", "dsn", "--other", "x"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", ":8080", "-d", "dsn"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-s", "one", "-s", "two"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "one", "-s", "two"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
