package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Product represents a catalog entry. Identity (ID, SKU) is immutable once
// created; descriptive fields may change.
type Product struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	SKU         string                    `json:"sku"`
	Description string                    `json:"description,omitempty"`
	CategoryID  string                    `json:"category_id,omitempty"`
	Tags        []string                  `json:"tags,omitempty"`
	Attributes  map[string]AttributeValue `json:"attributes,omitempty"`
	Barcode     string                    `json:"barcode,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// AttributeKind enumerates the value kinds permitted in product attributes.
type AttributeKind string

const (
	AttributeString AttributeKind = "string"
	AttributeNumber AttributeKind = "number"
	AttributeBool   AttributeKind = "bool"
	AttributeList   AttributeKind = "list"
)

// AttributeValue is a tagged union over the permitted attribute value kinds.
// Only the field matching Kind is meaningful. On the wire it is the bare
// scalar or array; objects and null are rejected.
type AttributeValue struct {
	Kind AttributeKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

func StringAttr(s string) AttributeValue  { return AttributeValue{Kind: AttributeString, Str: s} }
func NumberAttr(n float64) AttributeValue { return AttributeValue{Kind: AttributeNumber, Num: n} }
func BoolAttr(b bool) AttributeValue      { return AttributeValue{Kind: AttributeBool, Bool: b} }
func ListAttr(l []string) AttributeValue  { return AttributeValue{Kind: AttributeList, List: l} }

func (v AttributeValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AttributeString:
		return json.Marshal(v.Str)
	case AttributeNumber:
		return json.Marshal(v.Num)
	case AttributeBool:
		return json.Marshal(v.Bool)
	case AttributeList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	}
	return nil, fmt.Errorf("unknown attribute kind %q", v.Kind)
}

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		*v = StringAttr(val)
	case float64:
		*v = NumberAttr(val)
	case bool:
		*v = BoolAttr(val)
	case []any:
		list := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("attribute lists may only contain strings, got %T", item)
			}
			list[i] = s
		}
		*v = ListAttr(list)
	default:
		return fmt.Errorf("unsupported attribute value of type %T", raw)
	}
	return nil
}

// Category groups products. ParentID allows a hierarchy; empty means root.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
