package adsdomain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Int64 aceita inteiros codificados como string, que é como a API REST
// do Google Ads serializa campos int64, ou como número.
type Int64 int64

func (i *Int64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	if data[0] == '"' {
		data = bytes.Trim(data, `"`)
		if len(data) == 0 {
			*i = 0
			return nil
		}
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return fmt.Errorf("adsdomain: invalid int64 value %q: %w", string(data), err)
		}
		v = int64(f)
	}

	*i = Int64(v)
	return nil
}

func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}
