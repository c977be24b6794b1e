package pgxconn

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/nikmy/txguard/pkg/errors"
)

// encodeParams renders statement arguments in the text format, leaving
// type inference to the server.
func encodeParams(args []any) ([][]byte, error) {
	if len(args) == 0 {
		return nil, nil
	}

	values := make([][]byte, len(args))
	for i, arg := range args {
		v, err := encodeParam(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "encode arg %d", i)
		}
		values[i] = v
	}
	return values, nil
}

func encodeParam(arg any) ([]byte, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return []byte(`\x` + hex.EncodeToString(v)), nil
	case bool:
		return strconv.AppendBool(nil, v), nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
	case time.Time:
		return []byte(v.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return nil, errors.Errorf("unsupported parameter type %T", arg)
	}
}
