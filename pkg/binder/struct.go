package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// decodeValues copies form values into the struct pointed to by v, matching
// keys by the tag named tag. Untagged fields match their lowercased name.
func decodeValues(v any, tag string, values map[string][]string) error {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		key := strings.ToLower(sf.Name)
		if name, _, _ := strings.Cut(sf.Tag.Get(tag), ","); name == "-" {
			continue
		} else if name != "" {
			key = name
		}

		raw := values[key]
		if len(raw) == 0 {
			continue
		}
		if err := assign(rv.Field(i), raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToParseForm, key, err)
		}
	}
	return nil
}

func assign(dst reflect.Value, raw []string) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), raw)
	case reflect.Slice:
		var parts []string
		for _, s := range raw {
			for p := range strings.SplitSeq(s, ",") {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		out := reflect.MakeSlice(dst.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := assign(out.Index(i), []string{p}); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	s := raw[0]
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an unsigned integer: %q", s)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		dst.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %s", dst.Kind())
	}
	return nil
}

// parseBool also accepts checkbox style values.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", s)
	}
	return b, nil
}
