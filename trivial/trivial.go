// Package trivial implements the fixed-width serializer: no length
// prefixes, every type's encoded size is a compile-time constant. The
// universe it covers is restricted to fixed-width arithmetic scalars, fixed
// arrays, Optional[T] and reflectible aggregates built out of those -
// exactly the set of types for which Size does not depend on the value
// being serialized.
//
// Reflectible aggregates are plain Go structs whose participating fields
// carry a `serial:"true"` tag; fields are visited in declaration order on
// both sides, which is what makes tuple and aggregate the same wire shape -
// the spec draws no distinction between a positional tuple and a named
// struct once both are reduced to "fields in declaration order".
package trivial

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/duskcodec/duskgate/wire"
)

// Size returns the compile-time-constant encoded size of v's type.
func Size(v interface{}) (int, error) {
	return sizeOfType(reflect.TypeOf(v))
}

// Marshal encodes v into a freshly allocated, exactly-sized buffer.
func Marshal(v interface{}) ([]byte, error) {
	n, err := Size(v)
	if err != nil {
		return nil, err
	}

	buf := wire.New(n)
	if err := put(buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data into out, which must be a non-nil pointer to a
// trivially-serializable type. Exactly Size(*out) bytes are consumed.
func Unmarshal(data []byte, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("trivial: Unmarshal requires a non-nil pointer")
	}

	return take(wire.New(data), rv.Elem())
}

func sizeOfType(t reflect.Type) (int, error) {
	switch t.Kind() {
	case reflect.Bool:
		return wire.BoolSize, nil
	case reflect.Int8:
		return wire.Int8Size, nil
	case reflect.Int16:
		return wire.Int16Size, nil
	case reflect.Int32:
		return wire.Int32Size, nil
	case reflect.Int64:
		return wire.Int64Size, nil
	case reflect.Uint8:
		return wire.Uint8Size, nil
	case reflect.Uint16:
		return wire.Uint16Size, nil
	case reflect.Uint32:
		return wire.Uint32Size, nil
	case reflect.Uint64:
		return wire.Uint64Size, nil
	case reflect.Float32:
		return wire.Float32Size, nil
	case reflect.Float64:
		return wire.Float64Size, nil
	case reflect.Array:
		elemSize, err := sizeOfType(t.Elem())
		if err != nil {
			return 0, err
		}

		return elemSize * t.Len(), nil
	case reflect.Struct:
		if isOptionalType(t) {
			valueType, _ := t.FieldByName("Value")
			inner, err := sizeOfType(valueType.Type)
			if err != nil {
				return 0, err
			}

			return wire.BoolSize + inner, nil
		}

		return sizeOfAggregate(t)
	default:
		return 0, errors.Newf("trivial: %s is not trivially serializable", t)
	}
}

func sizeOfAggregate(t reflect.Type) (int, error) {
	total := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !isTaggedField(field) {
			continue
		}

		size, err := sizeOfType(field.Type)
		if err != nil {
			return 0, errors.Wrapf(err, "field %s", field.Name)
		}

		total += size
	}

	return total, nil
}

func put(buf *wire.Buffer, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		buf.WriteBool(v.Bool())
	case reflect.Int8:
		buf.WriteInt8(int8(v.Int()))
	case reflect.Int16:
		buf.WriteInt16(int16(v.Int()))
	case reflect.Int32:
		buf.WriteInt32(int32(v.Int()))
	case reflect.Int64:
		buf.WriteInt64(v.Int())
	case reflect.Uint8:
		buf.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		buf.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		buf.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64:
		buf.WriteUint64(v.Uint())
	case reflect.Float32:
		buf.WriteFloat32(float32(v.Float()))
	case reflect.Float64:
		buf.WriteFloat64(v.Float())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := put(buf, v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		if isOptionalType(v.Type()) {
			return putOptional(buf, v)
		}

		return putAggregate(buf, v)
	default:
		return errors.Newf("trivial: %s is not trivially serializable", v.Type())
	}

	return nil
}

func putOptional(buf *wire.Buffer, v reflect.Value) error {
	buf.WriteBool(v.FieldByName("Valid").Bool())

	return put(buf, v.FieldByName("Value"))
}

func putAggregate(buf *wire.Buffer, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !isTaggedField(t.Field(i)) {
			continue
		}

		if err := put(buf, v.Field(i)); err != nil {
			return errors.Wrapf(err, "field %s", t.Field(i).Name)
		}
	}

	return nil
}

func take(buf *wire.Buffer, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		x, err := buf.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(x)
	case reflect.Int8:
		x, err := buf.ReadInt8()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
	case reflect.Int16:
		x, err := buf.ReadInt16()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
	case reflect.Int32:
		x, err := buf.ReadInt32()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
	case reflect.Int64:
		x, err := buf.ReadInt64()
		if err != nil {
			return err
		}
		v.SetInt(x)
	case reflect.Uint8:
		x, err := buf.ReadUint8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
	case reflect.Uint16:
		x, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
	case reflect.Uint32:
		x, err := buf.ReadUint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
	case reflect.Uint64:
		x, err := buf.ReadUint64()
		if err != nil {
			return err
		}
		v.SetUint(x)
	case reflect.Float32:
		x, err := buf.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(x))
	case reflect.Float64:
		x, err := buf.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(x)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := take(buf, v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		if isOptionalType(v.Type()) {
			return takeOptional(buf, v)
		}

		return takeAggregate(buf, v)
	default:
		return errors.Newf("trivial: %s is not trivially serializable", v.Type())
	}

	return nil
}

func takeOptional(buf *wire.Buffer, v reflect.Value) error {
	valid, err := buf.ReadBool()
	if err != nil {
		return err
	}

	valueField := v.FieldByName("Value")

	// The payload slot is reserved unconditionally, so it must always be
	// consumed from the wire even when the tag says it is not present.
	tmp := reflect.New(valueField.Type()).Elem()
	if err := take(buf, tmp); err != nil {
		return err
	}

	if valid {
		valueField.Set(tmp)
	}
	v.FieldByName("Valid").SetBool(valid)

	return nil
}

func takeAggregate(buf *wire.Buffer, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !isTaggedField(t.Field(i)) {
			continue
		}

		if err := take(buf, v.Field(i)); err != nil {
			return errors.Wrapf(err, "field %s", t.Field(i).Name)
		}
	}

	return nil
}

// isOptionalType recognizes Optional[T] by its distinctive two-field shape
// rather than by matching the generic type's rendered name.
func isOptionalType(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}

	valid, value := t.Field(0), t.Field(1)

	return valid.Name == "Valid" && valid.Type.Kind() == reflect.Bool && value.Name == "Value"
}

func isTaggedField(field reflect.StructField) bool {
	tag, ok := field.Tag.Lookup("serial")

	return ok && tag == "true"
}
