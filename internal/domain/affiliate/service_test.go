package affiliate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendRef(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code string
		want string
	}{
		{
			name: "plain path",
			in:   "https://shop.example.com/products/mug",
			code: "partner42",
			want: "https://shop.example.com/products/mug?ref=partner42",
		},
		{
			name: "existing query preserved",
			in:   "https://shop.example.com/products?sort_by=price_asc",
			code: "partner42",
			want: "https://shop.example.com/products?ref=partner42&sort_by=price_asc",
		},
		{
			name: "existing ref overwritten",
			in:   "https://shop.example.com/?ref=old",
			code: "new",
			want: "https://shop.example.com/?ref=new",
		},
		{
			name: "empty code is a no-op",
			in:   "https://shop.example.com/",
			code: "",
			want: "https://shop.example.com/",
		},
		{
			name: "relative path",
			in:   "/products/mug",
			code: "partner42",
			want: "/products/mug?ref=partner42",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AppendRef(tc.in, tc.code))
		})
	}
}
