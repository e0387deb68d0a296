package codec

import "github.com/go-scale/scale/errs"

// DecodeFull decodes a single top-level value with decode, then fails with
// errs.ErrExtraData if any bytes remain, regardless of the Decoder's
// configured FullConsumption policy. Use this when the caller knows data
// should hold exactly one encoded value.
func DecodeFull(d *Decoder, decode func(*Decoder) error) error {
	if err := decode(d); err != nil {
		return err
	}

	if d.Remaining() > 0 {
		return errs.ErrExtraData
	}

	return nil
}
