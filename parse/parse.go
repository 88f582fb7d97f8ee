package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// As parses content into a value of type T.
//
// For primitive types (string, bool, int, uint, float) it converts
// directly. For structs, maps and slices it unmarshals content as JSON;
// when strict unmarshaling fails the payload is run through jsonrepair and
// decoding is retried, which recovers the near-JSON that chat models tend
// to emit.
//
// Example:
//
//	type Verdict struct {
//	    Factual bool   `json:"factual"`
//	    Reason  string `json:"reason"`
//	}
//
//	verdict, err := parse.As[Verdict](resp.Choices[0].Message.Content)
func As[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("parsing content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("parsing content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parsing content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parsing content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		if err := json.Unmarshal([]byte(content), &result); err != nil {
			repaired, repairErr := jsonrepair.JSONRepair(content)
			if repairErr != nil {
				return result, fmt.Errorf("unmarshaling content as %T: %w (repair also failed: %v)", result, err, repairErr)
			}

			if err := json.Unmarshal([]byte(repaired), &result); err != nil {
				return result, fmt.Errorf("unmarshaling repaired JSON as %T: %w", result, err)
			}
		}
		return result, nil
	}
}
