package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeValueMarshalsBareScalars(t *testing.T) {
	cases := []struct {
		name string
		in   AttributeValue
		want string
	}{
		{"string", StringAttr("black"), `"black"`},
		{"number", NumberAttr(128), `128`},
		{"bool", BoolAttr(true), `true`},
		{"list", ListAttr([]string{"a", "b"}), `["a","b"]`},
		{"nil list", ListAttr(nil), `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestAttributeValueUnmarshalSniffsKind(t *testing.T) {
	var attrs map[string]AttributeValue
	payload := `{"color":"black","storage":128,"refurbished":false,"ports":["usb-c","hdmi"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &attrs))

	assert.Equal(t, StringAttr("black"), attrs["color"])
	assert.Equal(t, NumberAttr(128), attrs["storage"])
	assert.Equal(t, BoolAttr(false), attrs["refurbished"])
	assert.Equal(t, ListAttr([]string{"usb-c", "hdmi"}), attrs["ports"])
}

func TestAttributeValueRejectsObjectsNullAndMixedLists(t *testing.T) {
	for _, payload := range []string{
		`{"nested":{"a":1}}`,
		`{"empty":null}`,
		`{"mixed":["a",1]}`,
	} {
		var attrs map[string]AttributeValue
		assert.Error(t, json.Unmarshal([]byte(payload), &attrs), "payload %s", payload)
	}
}

func TestAttributeValueRoundTripInsideProduct(t *testing.T) {
	original := Product{
		Name: "Phone",
		SKU:  "PH-1",
		Attributes: map[string]AttributeValue{
			"color":   StringAttr("black"),
			"storage": StringAttr("128GB"),
			"weight":  NumberAttr(0.24),
		},
	}

	out, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, original.Attributes, decoded.Attributes)
}
