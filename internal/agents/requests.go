package agents

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validation messages and types reported to clients.
const (
	msgMissing    = "Field required"
	msgJSON       = "JSON decode error"
	msgObject     = "Input should be a valid dictionary or object to extract fields from"
	msgString     = "Input should be a valid string"
	msgInt        = "Input should be a valid integer"
	msgIntFrac    = "Input should be a valid integer, got a number with a fractional part"
	msgDict       = "Input should be a valid dictionary"
	msgIntParsing = "Input should be a valid integer, unable to parse string as an integer"
)

// ParseCommand decodes a request body into a Command. Absent fields take
// their defaults, null clears optional fields, and unknown fields (including
// id) are ignored. Every rejected field is reported in a *ValidationError.
func ParseCommand(data []byte) (Command, error) {
	verr := &ValidationError{}

	if len(bytes.TrimSpace(data)) == 0 {
		verr.add(msgMissing, "missing", "body")
		return Command{}, verr
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr.add(msgObject, "model_attributes_type", "body")
		} else {
			verr.add(msgJSON, "json_invalid", "body")
		}
		return Command{}, verr
	}

	cmd := NewCommand("")
	d := fieldDecoder{fields: fields, errs: verr}

	if !d.required("name", &cmd.Name) {
		if _, ok := fields["name"]; !ok {
			verr.add(msgMissing, "missing", "body", "name")
		}
	}
	d.optional("system_message", &cmd.SystemMessage, msgString, "string_type")
	d.required("human_input_mode", &cmd.HumanInputMode)
	d.integer("max_consecutive_auto_reply", &cmd.MaxConsecutiveAutoReply)
	d.object("code_execution_config", &cmd.CodeExecutionConfig)
	d.object("llm_config", &cmd.LLMConfig)
	d.optional("description", &cmd.Description, msgString, "string_type")

	if err := verr.orNil(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// ParseID parses an agent id path value.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		verr := &ValidationError{}
		verr.add(msgIntParsing, "int_parsing", "path", "id")
		return 0, verr
	}
	return id, nil
}

type fieldDecoder struct {
	fields map[string]json.RawMessage
	errs   *ValidationError
}

// required decodes a non-nullable string field. It reports whether a value
// was assigned; an absent field leaves dst unchanged.
func (d fieldDecoder) required(key string, dst *string) bool {
	raw, ok := d.fields[key]
	if !ok {
		return false
	}
	if isJSONNull(raw) || json.Unmarshal(raw, dst) != nil {
		d.errs.add(msgString, "string_type", "body", key)
		return false
	}
	return true
}

// optional decodes a nullable field into dst. JSON null sets dst to its zero value.
func (d fieldDecoder) optional(key string, dst any, msg, typ string) {
	raw, ok := d.fields[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.errs.add(msg, typ, "body", key)
	}
}

// object decodes a nullable JSON object, keeping numbers as json.Number so
// integers of any size are stored exactly.
func (d fieldDecoder) object(key string, dst *map[string]any) {
	raw, ok := d.fields[key]
	if !ok {
		return
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		d.errs.add(msgDict, "dict_type", "body", key)
		return
	}
	*dst = obj
}

// integer decodes a nullable integer. Whole-valued numbers such as 5.0 and
// numeric strings such as "5" are accepted; fractions and other types are not.
func (d fieldDecoder) integer(key string, dst **int) {
	raw, ok := d.fields[key]
	if !ok {
		return
	}
	if isJSONNull(raw) {
		*dst = nil
		return
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		d.errs.add(msgInt, "int_type", "body", key)
		return
	}

	var (
		n   int
		err error
	)
	switch v := v.(type) {
	case json.Number:
		n, err = wholeNumber(v.String())
		if err != nil {
			d.errs.add(msgIntFrac, "int_from_float", "body", key)
			return
		}
	case string:
		n, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			d.errs.add(msgIntParsing, "int_parsing", "body", key)
			return
		}
	default:
		d.errs.add(msgInt, "int_type", "body", key)
		return
	}
	*dst = &n
}

func wholeNumber(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.New("not a whole number in range")
	}
	return int(f), nil
}
