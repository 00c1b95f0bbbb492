package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "ID", want: "ID"},
		{name: "order_id", want: "order_id"},
		{name: "Order ID", want: "Order_x0020_ID"},
		{name: "1st", want: "_x0031_st"},
		{name: "a1-b.c", want: "a1-b.c"},
		{name: "-a", want: "_x002D_a"},
		{name: "ns:col", want: "ns_x003A_col"},
		{name: "a_xb", want: "a_x005F_xb"},
		{name: "_x0041_", want: "_x005F_x0041_"},
		{name: "한", want: "_xD55C_"},
		{name: "😀", want: "_x0001F600_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escaped := EscapeName(tt.name)
			assert.Equal(t, tt.want, escaped)
			assert.Equal(t, tt.name, UnescapeName(escaped))
		})
	}
}

func TestUnescapeName_Foreign(t *testing.T) {
	for _, name := range []string{"plain", "_xZZZZ_", "_x12", "a_x", "_x0041"} {
		assert.Equal(t, name, UnescapeName(name))
	}
	assert.Equal(t, "A", UnescapeName("_x0041_"))
}
