package sqlite

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"
)

// JSONBlob type for marshaling/unmarshaling inner type to json.
type JSONBlob struct {
	Data interface{}
}

// Scan implements interface.
func (blob *JSONBlob) Scan(value interface{}) error {
	if value == nil || reflect.ValueOf(blob.Data).IsNil() {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("not a byte slice")
	}
	if len(bytes) == 0 {
		return nil
	}
	err := json.Unmarshal(bytes, blob.Data)
	return err
}

// Value implements interface.
func (blob *JSONBlob) Value() (driver.Value, error) {
	if blob.Data == nil || reflect.ValueOf(blob.Data).IsNil() {
		return nil, nil
	}
	return json.Marshal(blob.Data)
}

// BigInt stores an arbitrary precision integer as a decimal string, since
// wei amounts overflow INTEGER columns.
type BigInt struct {
	*big.Int
}

// Scan implements interface.
func (b *BigInt) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		b.Int = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported BigInt column type %T", value)
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid BigInt value %q", s)
	}
	b.Int = i
	return nil
}

// Value implements interface.
func (b BigInt) Value() (driver.Value, error) {
	if b.Int == nil {
		return nil, nil
	}
	return b.Int.String(), nil
}
