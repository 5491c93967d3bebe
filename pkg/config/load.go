package config

import (
	"os"

	"github.com/tidwall/gjson"
)

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindStringArray
)

func (k valueKind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindStringArray:
		return "array of strings"
	default:
		return "string"
	}
}

type keySpec struct {
	kind   valueKind
	assign func(s *Settings, v gjson.Result)
}

var commonKeys = map[string]keySpec{
	"project_file": {kindString, func(s *Settings, v gjson.Result) { s.ProjectFile = v.Str }},
	"cppcheck":     {kindString, func(s *Settings, v gjson.Result) { s.Cppcheck = v.Str }},
}

var genericKeys = map[string]keySpec{
	"log_file":       {kindString, func(s *Settings, v gjson.Result) { s.LogFile = v.Str }},
	"enable_logging": {kindBool, func(s *Settings, v gjson.Result) { s.LoggingEnabled = v.Bool() }},
	"extra_args": {kindStringArray, func(s *Settings, v gjson.Result) {
		for _, arg := range v.Array() {
			s.ConfigArgs = append(s.ConfigArgs, arg.Str)
		}
	}},
}

var namedKeys = map[string]keySpec{
	"enable": {kindString, func(s *Settings, v gjson.Result) {
		if !s.isSetByArgs(fromArgsEnable) {
			s.Enable = v.Str
		}
	}},
	"template": {kindString, func(s *Settings, v gjson.Result) {
		if !s.isSetByArgs(fromArgsTemplate) {
			s.Template = v.Str
		}
	}},
	"premium": {kindString, func(s *Settings, v gjson.Result) {
		if !s.isSetByArgs(fromArgsPremium) {
			s.Premium = v.Str
		}
	}},
}

func (s Schema) lookupKey(key string) (keySpec, bool) {
	if spec, ok := commonKeys[key]; ok {
		return spec, true
	}
	var spec keySpec
	var ok bool
	switch s {
	case SchemaNamed:
		spec, ok = namedKeys[key]
	default:
		spec, ok = genericKeys[key]
	}
	return spec, ok
}

// LoadFile reads the config file at path and merges it into s.
func LoadFile(s *Settings, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	return Load(s, content)
}

// Load parses content as a JSON object and merges its entries into s.
// Entries are applied in document order and loading stops at the first
// unknown key or mistyped value; entries applied before that are kept.
func Load(s *Settings, content []byte) error {
	if !gjson.ValidBytes(content) {
		return &ParseError{Msg: "invalid JSON"}
	}

	doc := gjson.ParseBytes(content)
	if !doc.IsObject() {
		return &ParseError{Msg: "invalid config format: top-level value is not an object"}
	}

	var err error
	doc.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		spec, ok := s.Schema.lookupKey(key)
		if !ok {
			err = &KeyError{Key: key, Unknown: true, Index: -1}
			return false
		}
		if err = checkKind(key, spec.kind, v); err != nil {
			return false
		}
		spec.assign(s, v)
		return true
	})
	return err
}

func checkKind(key string, kind valueKind, v gjson.Result) error {
	switch kind {
	case kindString:
		if v.Type == gjson.String {
			return nil
		}
	case kindBool:
		if v.Type == gjson.True || v.Type == gjson.False {
			return nil
		}
	case kindStringArray:
		if !v.IsArray() {
			break
		}
		for i, elem := range v.Array() {
			if elem.Type != gjson.String {
				return &KeyError{Key: key, Want: "string", Index: i}
			}
		}
		return nil
	}
	return &KeyError{Key: key, Want: kind.String(), Index: -1}
}
