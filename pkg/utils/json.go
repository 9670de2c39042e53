package utils

import (
	"bytes"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		fmt.Println(err)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	indented, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}

	out.Write(indented)
	return nil
}
