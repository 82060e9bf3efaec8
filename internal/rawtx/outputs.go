package rawtx

import (
	"fmt"
)

// AttachmentType identifies the payload carried by an output.
type AttachmentType uint32

const (
	AttachmentETP AttachmentType = iota
	AttachmentETPAward
	AttachmentAsset
	AttachmentMessage
	AttachmentDID
	AttachmentCert
	AttachmentMIT
)

// DIDAttachmentVersion marks attachments prefixed with to/from DIDs.
const DIDAttachmentVersion = 207

// Asset attachment statuses.
const (
	AssetDetail   = 1
	AssetTransfer = 2
)

// MITRegister is the MIT status that carries a content field.
const MITRegister = 1

func (t AttachmentType) String() string {
	switch t {
	case AttachmentETP:
		return "etp"
	case AttachmentETPAward:
		return "etp-award"
	case AttachmentAsset:
		return "asset"
	case AttachmentMessage:
		return "message"
	case AttachmentDID:
		return "did"
	case AttachmentCert:
		return "asset-cert"
	case AttachmentMIT:
		return "asset-mit"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// Attachment is the typed payload of an output.
type Attachment struct {
	Version uint32
	Type    AttachmentType
	ToDID   string
	FromDID string
	Status  uint32
	Symbol  string
	Address string
	// Quantity is the asset amount of transfers and the supply of issues.
	Quantity uint64
	Height   uint64
	Message  string
	// Body holds the raw type specific bytes.
	Body []byte
}

// Output is one decoded transaction output.
type Output struct {
	Value      uint64
	Script     []byte
	Attachment Attachment
}

// DecodeOutputs inspects the trailing bytes of a transaction and returns the
// outputs they hold with the number of bytes consumed. The codec itself never
// needs this; it is for describing transactions and sizing stored records.
func DecodeOutputs(b []byte) ([]Output, int, error) {
	r := &reader{buf: b}
	outs, err := readOutputs(r)
	if err != nil {
		return nil, 0, err
	}
	return outs, r.off, nil
}

func readOutputs(r *reader) ([]Output, error) {
	count, err := r.varInt("output count")
	if err != nil {
		return nil, err
	}
	// value + empty script + attachment version and type
	const minOutputSize = 8 + 1 + 4 + 4
	if count > uint64(r.remaining()/minOutputSize) {
		return nil, fmt.Errorf("%w: %d outputs declared, %d bytes left",
			ErrMalformedEncoding, count, r.remaining())
	}
	outs := make([]Output, 0, count)
	for i := uint64(0); i < count; i++ {
		out, err := readOutput(r, i)
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func readOutput(r *reader, i uint64) (Output, error) {
	var (
		out Output
		err error
	)
	if out.Value, err = r.uint64(fmt.Sprintf("output %d value", i)); err != nil {
		return Output{}, err
	}
	if out.Script, err = r.varBytes(fmt.Sprintf("output %d script", i)); err != nil {
		return Output{}, err
	}
	if out.Attachment, err = readAttachment(r); err != nil {
		return Output{}, fmt.Errorf("output %d attachment: %w", i, err)
	}
	return out, nil
}

func readAttachment(r *reader) (Attachment, error) {
	var (
		a   Attachment
		err error
	)
	if a.Version, err = r.uint32("version"); err != nil {
		return a, err
	}
	typ, err := r.uint32("type")
	if err != nil {
		return a, err
	}
	a.Type = AttachmentType(typ)
	if a.Version == DIDAttachmentVersion {
		if a.ToDID, err = r.varString("to did"); err != nil {
			return a, err
		}
		if a.FromDID, err = r.varString("from did"); err != nil {
			return a, err
		}
	}

	start := r.off
	switch a.Type {
	case AttachmentETP:
	case AttachmentETPAward:
		a.Height, err = r.uint64("award height")
	case AttachmentAsset:
		err = readAsset(r, &a)
	case AttachmentMessage:
		a.Message, err = r.varString("message")
	case AttachmentDID:
		err = readDID(r, &a)
	case AttachmentCert:
		err = readCert(r, &a)
	case AttachmentMIT:
		err = readMIT(r, &a)
	default:
		return a, fmt.Errorf("%w: unknown attachment type %d", ErrMalformedEncoding, typ)
	}
	if err != nil {
		return a, err
	}
	a.Body = append([]byte{}, r.buf[start:r.off]...)
	return a, nil
}

func readAsset(r *reader, a *Attachment) error {
	var err error
	if a.Status, err = r.uint32("asset status"); err != nil {
		return err
	}
	switch a.Status {
	case AssetDetail:
		if a.Symbol, err = r.varString("asset symbol"); err != nil {
			return err
		}
		if a.Quantity, err = r.uint64("asset maximum supply"); err != nil {
			return err
		}
		// decimal number, secondary issue threshold and two reserved bytes
		if _, err = r.next(4, "asset flags"); err != nil {
			return err
		}
		if _, err = r.varString("asset issuer"); err != nil {
			return err
		}
		if a.Address, err = r.varString("asset address"); err != nil {
			return err
		}
		_, err = r.varString("asset description")
		return err
	case AssetTransfer:
		if a.Symbol, err = r.varString("asset symbol"); err != nil {
			return err
		}
		a.Quantity, err = r.uint64("asset quantity")
		return err
	default:
		return fmt.Errorf("%w: unknown asset status %d", ErrMalformedEncoding, a.Status)
	}
}

func readDID(r *reader, a *Attachment) error {
	var err error
	if a.Status, err = r.uint32("did status"); err != nil {
		return err
	}
	if a.Symbol, err = r.varString("did symbol"); err != nil {
		return err
	}
	a.Address, err = r.varString("did address")
	return err
}

func readCert(r *reader, a *Attachment) error {
	var err error
	if a.Symbol, err = r.varString("cert symbol"); err != nil {
		return err
	}
	// owner
	if _, err = r.varString("cert owner"); err != nil {
		return err
	}
	if a.Address, err = r.varString("cert address"); err != nil {
		return err
	}
	// cert type
	if _, err = r.uint32("cert type"); err != nil {
		return err
	}
	status, err := r.uint8("cert status")
	a.Status = uint32(status)
	return err
}

func readMIT(r *reader, a *Attachment) error {
	status, err := r.uint8("mit status")
	if err != nil {
		return err
	}
	a.Status = uint32(status)
	if a.Symbol, err = r.varString("mit symbol"); err != nil {
		return err
	}
	if a.Address, err = r.varString("mit address"); err != nil {
		return err
	}
	if status == MITRegister {
		a.Message, err = r.varString("mit content")
	}
	return err
}
