// Package compact implements the variable-width serializer: every
// container is length-prefixed, so Size depends on the value being
// serialized rather than only its type. It covers sequences, byte strings,
// native maps, Set[T], owning pointers, Optional[T] and reflectible
// aggregates, using the same `serial:"true"` field tag convention as
// package trivial for structs.
//
// Arithmetic scalars fall back to the trivial layout since their size is
// already a compile-time constant. Strings, byte slices, sequences, maps
// and sets carry a uint64 length ahead of their payload; owning pointers
// and optionals carry a one-byte presence tag. Structs and fixed arrays
// are the plain concatenation of their elements, with no prefix.
package compact

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/duskcodec/duskgate/wire"
)

// Size returns the encoded size of v, which depends on the lengths of any
// sequences, maps, sets, strings or optionals it contains.
func Size(v interface{}) (int, error) {
	return sizeOf(reflect.ValueOf(v))
}

// Marshal encodes v into a freshly allocated, exactly-sized buffer.
func Marshal(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)

	n, err := sizeOf(rv)
	if err != nil {
		return nil, err
	}

	buf := wire.New(n)
	if err := put(buf, rv); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data into out, which must be a non-nil pointer to a
// compact-serializable type.
func Unmarshal(data []byte, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("compact: Unmarshal requires a non-nil pointer")
	}

	return take(wire.New(data), rv.Elem())
}

func sizeOf(v reflect.Value) (int, error) {
	if setImpl, ok := asSetLike(v); ok {
		return sizeOfSet(setImpl)
	}

	switch v.Kind() {
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
	case reflect.String:
		return wire.Uint64Size + v.Len(), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return wire.Uint64Size + v.Len(), nil
		}

		return sizeOfSequence(v)
	case reflect.Array:
		return sizeOfFixedSequence(v)
	case reflect.Map:
		return sizeOfMapping(v)
	case reflect.Ptr:
		if v.IsNil() {
			return wire.BoolSize, nil
		}

		inner, err := sizeOf(v.Elem())
		if err != nil {
			return 0, err
		}

		return wire.BoolSize + inner, nil
	case reflect.Struct:
		if isOptionalType(v.Type()) {
			return sizeOfOptional(v)
		}

		return sizeOfAggregate(v)
	default:
		return 0, errors.Newf("compact: %s is not compact-serializable", v.Type())
	}
}

func sizeOfSequence(v reflect.Value) (int, error) {
	total := wire.Uint64Size
	for i := 0; i < v.Len(); i++ {
		n, err := sizeOf(v.Index(i))
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}

		total += n
	}

	return total, nil
}

// Fixed-size Go arrays carry no length prefix of their own - the element
// count is part of the type - but their elements may themselves be
// variable-width, so each one still needs visiting.
func sizeOfFixedSequence(v reflect.Value) (int, error) {
	total := 0
	for i := 0; i < v.Len(); i++ {
		n, err := sizeOf(v.Index(i))
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}

		total += n
	}

	return total, nil
}

func sizeOfMapping(v reflect.Value) (int, error) {
	total := wire.Uint64Size
	iter := v.MapRange()
	for iter.Next() {
		kSize, err := sizeOf(iter.Key())
		if err != nil {
			return 0, err
		}

		vSize, err := sizeOf(iter.Value())
		if err != nil {
			return 0, err
		}

		total += kSize + vSize
	}

	return total, nil
}

func sizeOfSet(s setLike) (int, error) {
	total := wire.Uint64Size

	var err error
	s.rangeAny(func(elem reflect.Value) {
		if err != nil {
			return
		}

		var n int
		n, err = sizeOf(elem)
		total += n
	})

	return total, err
}

func sizeOfOptional(v reflect.Value) (int, error) {
	if !v.FieldByName("Valid").Bool() {
		return wire.BoolSize, nil
	}

	inner, err := sizeOf(v.FieldByName("Value"))
	if err != nil {
		return 0, err
	}

	return wire.BoolSize + inner, nil
}

func sizeOfAggregate(v reflect.Value) (int, error) {
	t := v.Type()
	total := 0
	for i := 0; i < t.NumField(); i++ {
		if !isTaggedField(t.Field(i)) {
			continue
		}

		n, err := sizeOf(v.Field(i))
		if err != nil {
			return 0, errors.Wrapf(err, "field %s", t.Field(i).Name)
		}

		total += n
	}

	return total, nil
}

func put(buf *wire.Buffer, v reflect.Value) error {
	if setImpl, ok := asSetLike(v); ok {
		return putSet(buf, setImpl)
	}

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
	case reflect.String:
		buf.WriteUint64(uint64(v.Len()))
		buf.WriteBytes([]byte(v.String()))
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			buf.WriteUint64(uint64(v.Len()))
			buf.WriteBytes(v.Bytes())

			return nil
		}

		buf.WriteUint64(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			if err := put(buf, v.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := put(buf, v.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
	case reflect.Map:
		return putMapping(buf, v)
	case reflect.Ptr:
		if v.IsNil() {
			buf.WriteBool(false)

			return nil
		}

		buf.WriteBool(true)

		return put(buf, v.Elem())
	case reflect.Struct:
		if isOptionalType(v.Type()) {
			return putOptional(buf, v)
		}

		return putAggregate(buf, v)
	default:
		return errors.Newf("compact: %s is not compact-serializable", v.Type())
	}

	return nil
}

func putMapping(buf *wire.Buffer, v reflect.Value) error {
	buf.WriteUint64(uint64(v.Len()))

	iter := v.MapRange()
	for iter.Next() {
		if err := put(buf, iter.Key()); err != nil {
			return errors.Wrap(err, "map key")
		}

		if err := put(buf, iter.Value()); err != nil {
			return errors.Wrap(err, "map value")
		}
	}

	return nil
}

func putSet(buf *wire.Buffer, s setLike) error {
	buf.WriteUint64(uint64(s.Len()))

	var err error
	s.rangeAny(func(elem reflect.Value) {
		if err != nil {
			return
		}

		err = put(buf, elem)
	})

	return err
}

func putOptional(buf *wire.Buffer, v reflect.Value) error {
	valid := v.FieldByName("Valid").Bool()
	buf.WriteBool(valid)

	if !valid {
		return nil
	}

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
	if v.Kind() == reflect.Ptr && v.IsNil() && implementsSetLike(v.Type()) {
		v.Set(reflect.New(v.Type().Elem()))
	}

	if setImpl, ok := asSetLike(v); ok {
		return takeSet(buf, setImpl)
	}

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
	case reflect.String:
		n, err := buf.ReadUint64()
		if err != nil {
			return err
		}

		raw, err := buf.ReadBytes(int(n))
		if err != nil {
			return err
		}
		v.SetString(string(raw))
	case reflect.Slice:
		n, err := buf.ReadUint64()
		if err != nil {
			return err
		}

		if v.Type().Elem().Kind() == reflect.Uint8 {
			raw, err := buf.ReadBytes(int(n))
			if err != nil {
				return err
			}
			v.SetBytes(append([]byte{}, raw...))

			return nil
		}

		out := reflect.MakeSlice(v.Type(), int(n), int(n))
		for i := 0; i < int(n); i++ {
			if err := take(buf, out.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		v.Set(out)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := take(buf, v.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
	case reflect.Map:
		return takeMapping(buf, v)
	case reflect.Ptr:
		present, err := buf.ReadBool()
		if err != nil {
			return err
		}

		if !present {
			v.Set(reflect.Zero(v.Type()))

			return nil
		}

		elem := reflect.New(v.Type().Elem())
		if err := take(buf, elem.Elem()); err != nil {
			return err
		}
		v.Set(elem)
	case reflect.Struct:
		if isOptionalType(v.Type()) {
			return takeOptional(buf, v)
		}

		return takeAggregate(buf, v)
	default:
		return errors.Newf("compact: %s is not compact-serializable", v.Type())
	}

	return nil
}

func takeMapping(buf *wire.Buffer, v reflect.Value) error {
	n, err := buf.ReadUint64()
	if err != nil {
		return err
	}

	t := v.Type()
	out := reflect.MakeMapWithSize(t, int(n))
	for i := 0; i < int(n); i++ {
		key := reflect.New(t.Key()).Elem()
		if err := take(buf, key); err != nil {
			return errors.Wrap(err, "map key")
		}

		val := reflect.New(t.Elem()).Elem()
		if err := take(buf, val); err != nil {
			return errors.Wrap(err, "map value")
		}

		out.SetMapIndex(key, val)
	}
	v.Set(out)

	return nil
}

func takeSet(buf *wire.Buffer, s setLike) error {
	n, err := buf.ReadUint64()
	if err != nil {
		return err
	}

	elemType := s.elemType()
	for i := 0; i < int(n); i++ {
		elem := reflect.New(elemType).Elem()
		if err := take(buf, elem); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
		s.insertAny(elem)
	}

	return nil
}

func takeOptional(buf *wire.Buffer, v reflect.Value) error {
	valid, err := buf.ReadBool()
	if err != nil {
		return err
	}
	v.FieldByName("Valid").SetBool(valid)

	if !valid {
		return nil
	}

	return take(buf, v.FieldByName("Value"))
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

var setLikeType = reflect.TypeOf((*setLike)(nil)).Elem()

// implementsSetLike reports whether t (a pointer type) implements setLike.
// Used to allocate a fresh *Set[T] before decoding into a nil field.
func implementsSetLike(t reflect.Type) bool {
	return t.Implements(setLikeType)
}

// asSetLike reports whether v holds a value that implements setLike -
// every *Set[T] does - without the caller needing to know T.
func asSetLike(v reflect.Value) (setLike, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}

	s, ok := v.Interface().(setLike)

	return s, ok
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
