package input

import (
	"testing"

	"github.com/rkohler/quadsheet/pkg/errors"
)

func TestResolvePageIndex(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		pageCount int
		want      int
		wantErr   bool
	}{
		{"last of many", "last", 5, 4, false},
		{"last of one", "last", 1, 0, false},
		{"empty means last", "", 3, 2, false},
		{"second-last", "second-last", 5, 3, false},
		{"second-last of two", "second-last", 2, 0, false},
		{"second-last of one fails", "second-last", 1, 0, true},
		{"zero means first", "0", 5, 0, false},
		{"one means first", "1", 5, 0, false},
		{"positive is 1-indexed", "3", 5, 2, false},
		{"final page by number", "5", 5, 4, false},
		{"negative counts from end", "-1", 5, 4, false},
		{"negative second-last", "-2", 5, 3, false},
		{"negative to first", "-5", 5, 0, false},
		{"past the end", "6", 5, 0, true},
		{"past the start", "-6", 5, 0, true},
		{"garbage", "banana", 5, 0, true},
		{"float not allowed", "1.5", 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePageIndex(tt.spec, tt.pageCount)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolvePageIndex(%q, %d) error = %v, wantErr %v",
					tt.spec, tt.pageCount, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidPageSelector) {
					t.Errorf("error code = %q, want %q",
						errors.GetCode(err), errors.ErrCodeInvalidPageSelector)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ResolvePageIndex(%q, %d) = %d, want %d",
					tt.spec, tt.pageCount, got, tt.want)
			}
		})
	}
}
