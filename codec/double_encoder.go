package codec

// DoubleEncoder composes two encoders: encode runs first then second,
// decode undoes them in reverse order. It holds no state of its own.
type DoubleEncoder struct {
	first, second Encoder
}

// NewDoubleEncoder returns an Encoder that applies first then second on
// encode, and reverses that order on decode.
func NewDoubleEncoder(first, second Encoder) *DoubleEncoder {
	return &DoubleEncoder{first: first, second: second}
}

func (d *DoubleEncoder) Encode(arg string) (string, error) {
	mid, err := d.first.Encode(arg)
	if err != nil {
		return "", err
	}

	return d.second.Encode(mid)
}

func (d *DoubleEncoder) Decode(arg string) (string, error) {
	mid, err := d.second.Decode(arg)
	if err != nil {
		return "", err
	}

	return d.first.Decode(mid)
}
