package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "header", false},
		{"with digits", "panel2", false},
		{"dotted", "sidebar.clock", false},
		{"dashed", "content-area", false},
		{"leading underscore", "_root", false},
		{"empty", "", true},
		{"leading digit", "1header", true},
		{"space", "side bar", true},
		{"slash", "a/b", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateNodeName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateDevicePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"framebuffer", "/dev/fb0", false},
		{"nested", "/dev/graphics/fb1", false},
		{"empty", "", true},
		{"relative", "dev/fb0", true},
		{"traversal", "/dev/../etc/passwd", true},
		{"null byte", "/dev/fb0\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDevicePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDevicePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
