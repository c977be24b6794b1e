package pgxconn

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/nikmy/txguard/pkg/errors"
)

// Column scanners for the text format, meant for building decoders:
//
//	dec := txguard.NewDecoder(2, func(row backend.RawRow) (user, error) {
//		id, err := pgxconn.Int64(row[0])
//		...
//	})

var errNull = errors.Error("unexpected null")

func String(v []byte) (string, error) {
	if v == nil {
		return "", errNull
	}
	return string(v), nil
}

func NullString(v []byte) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := string(v)
	return &s, nil
}

func Bytes(v []byte) ([]byte, error) {
	if v == nil {
		return nil, errNull
	}
	s := strings.TrimPrefix(string(v), `\x`)
	return hex.DecodeString(s)
}

func Int64(v []byte) (int64, error) {
	if v == nil {
		return 0, errNull
	}
	return strconv.ParseInt(string(v), 10, 64)
}

func Float64(v []byte) (float64, error) {
	if v == nil {
		return 0, errNull
	}
	return strconv.ParseFloat(string(v), 64)
}

func Bool(v []byte) (bool, error) {
	if v == nil {
		return false, errNull
	}
	switch string(v) {
	case "t", "true":
		return true, nil
	case "f", "false":
		return false, nil
	default:
		return false, errors.Errorf("invalid bool value %q", v)
	}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func Time(v []byte) (time.Time, error) {
	if v == nil {
		return time.Time{}, errNull
	}

	s := string(v)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid time value %q", s)
}
