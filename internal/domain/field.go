package domain

import (
	"fmt"
	"math"
	"strings"
)

// FieldType is the value type of an owner-defined custom field.
type FieldType string

const (
	FieldTypeString  FieldType = "STRING"
	FieldTypeText    FieldType = "TEXT"
	FieldTypeInteger FieldType = "INTEGER"
	FieldTypeBoolean FieldType = "BOOLEAN"
)

// SlotsPerType is how many custom fields of each type an inventory may define.
const SlotsPerType = 3

var slotPrefixes = map[FieldType]string{
	FieldTypeString:  "customString",
	FieldTypeText:    "customText",
	FieldTypeInteger: "customInt",
	FieldTypeBoolean: "customBool",
}

// FieldTypes lists the supported field types in display order.
var FieldTypes = []FieldType{FieldTypeString, FieldTypeText, FieldTypeInteger, FieldTypeBoolean}

// ParseFieldType parses a field type name case-insensitively.
func ParseFieldType(s string) (FieldType, error) {
	ft := FieldType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := slotPrefixes[ft]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFieldType, s)
	}
	return ft, nil
}

// SlotNames returns the ordered slot names of a field type, e.g. customString1..3.
func SlotNames(ft FieldType) []string {
	prefix, ok := slotPrefixes[ft]
	if !ok {
		return nil
	}
	names := make([]string, SlotsPerType)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return names
}

// AllSlotNames returns every slot name of every type.
func AllSlotNames() []string {
	names := make([]string, 0, len(FieldTypes)*SlotsPerType)
	for _, ft := range FieldTypes {
		names = append(names, SlotNames(ft)...)
	}
	return names
}

// SlotFieldType returns the type a slot name belongs to.
func SlotFieldType(slot string) (FieldType, bool) {
	for ft := range slotPrefixes {
		for _, name := range SlotNames(ft) {
			if name == slot {
				return ft, true
			}
		}
	}
	return "", false
}

// FreeSlot returns the lowest-numbered slot of ft not present in used.
func FreeSlot(ft FieldType, used []string) (string, bool) {
	taken := make(map[string]struct{}, len(used))
	for _, u := range used {
		taken[u] = struct{}{}
	}
	for _, name := range SlotNames(ft) {
		if _, ok := taken[name]; !ok {
			return name, true
		}
	}
	return "", false
}

// FieldConfig binds an owner-defined custom field to one item slot of an inventory.
type FieldConfig struct {
	ID               string    `json:"id"`
	InventoryID      string    `json:"inventoryId"`
	FieldType        FieldType `json:"fieldType"`
	TargetField      string    `json:"targetField"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IsRequired       bool      `json:"isRequired"`
	IsVisibleInTable bool      `json:"isVisibleInTable"`
	Position         int       `json:"position"`
}

// FieldConfigPatch is a partial update of a custom field definition.
type FieldConfigPatch struct {
	Name             *string
	Description      *string
	IsRequired       *bool
	IsVisibleInTable *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p FieldConfigPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.IsRequired == nil && p.IsVisibleInTable == nil
}

// Apply copies the set fields of p onto f.
func (p FieldConfigPatch) Apply(f *FieldConfig) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.IsRequired != nil {
		f.IsRequired = *p.IsRequired
	}
	if p.IsVisibleInTable != nil {
		f.IsVisibleInTable = *p.IsVisibleInTable
	}
}

// SlotValues holds custom field values keyed by slot name.
// Values are string (STRING, TEXT), int64 (INTEGER), bool (BOOLEAN) or nil to clear.
type SlotValues map[string]any

// CoerceSlotValue converts a decoded JSON value to the Go type of the slot.
func CoerceSlotValue(slot string, v any) (any, error) {
	ft, ok := SlotFieldType(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	if v == nil {
		return nil, nil
	}
	switch ft {
	case FieldTypeString, FieldTypeText:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case FieldTypeInteger:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			if n == math.Trunc(n) && math.Abs(n) <= math.MaxInt64 {
				return int64(n), nil
			}
		}
	case FieldTypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s expects %s", ErrInvalidSlotValue, slot, ft)
}

// ValidateSlotValues checks values against the inventory's field configs.
// With requireAll set, every required configured slot must hold a non-empty value.
func ValidateSlotValues(values SlotValues, configs []FieldConfig, requireAll bool) (SlotValues, error) {
	configured := make(map[string]FieldConfig, len(configs))
	for _, c := range configs {
		configured[c.TargetField] = c
	}

	out := make(SlotValues, len(values))
	for slot, raw := range values {
		v, err := CoerceSlotValue(slot, raw)
		if err != nil {
			return nil, err
		}
		cfg, ok := configured[slot]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSlotNotConfigured, slot)
		}
		if cfg.IsRequired && isBlank(v) {
			return nil, fmt.Errorf("%w: %s", ErrRequiredFieldMissing, cfg.Name)
		}
		out[slot] = v
	}

	if requireAll {
		for _, c := range configs {
			if !c.IsRequired {
				continue
			}
			if v, ok := out[c.TargetField]; !ok || isBlank(v) {
				return nil, fmt.Errorf("%w: %s", ErrRequiredFieldMissing, c.Name)
			}
		}
	}
	return out, nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
