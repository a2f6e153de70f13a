// This file contains the header property dictionary's value decoder:
// Property is a closed sum dispatched on its label string.

package repparser

import "github.com/rlreplay/rlrep/rep"

const steamPlatformByteKey = "OnlinePlatform_Steam\x00"

// decodeProperty reads one Property: label, size, then a value whose shape
// is selected by the label. An unrecognized label fails with
// UnknownProperty.
func decodeProperty(r *ByteReader) rep.Property {
	label := r.GetText()
	size := r.GetUint64()

	var value rep.PropertyValue
	switch label.Value {
	case "ArrayProperty\x00":
		value = rep.PropertyValue{
			Kind: rep.PropertyArray,
			Array: GetList(r, func(r *ByteReader) rep.Dictionary[rep.Property] {
				return GetDictionary(r, decodeProperty)
			}),
		}
	case "BoolProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyBool, Bool: r.GetByte()}
	case "ByteProperty\x00":
		key := r.GetText()
		var byteValue *rep.Text
		if key.Value != steamPlatformByteKey {
			t := r.GetText()
			byteValue = &t
		}
		value = rep.PropertyValue{Kind: rep.PropertyByte, ByteKey: key, ByteValue: byteValue}
	case "FloatProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyFloat, Float: r.GetFloat32()}
	case "IntProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyInt, Int: r.GetUint32()}
	case "NameProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyName, Name: r.GetText()}
	case "QWordProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyQWord, QWord: r.GetUint64()}
	case "StrProperty\x00":
		value = rep.PropertyValue{Kind: rep.PropertyStr, Str: r.GetText()}
	default:
		fail(UnknownProperty, label.Value)
	}

	return rep.Property{Label: label, Size: size, Value: value}
}
