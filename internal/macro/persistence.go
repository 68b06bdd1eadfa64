package macro

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Marshal serializes every macro in s to a JSON document shaped as:
//
//	{"name": {"text": "...", "arity": {"kind": "exactly", "n": 2}}}
//
// gjson/sjson are used instead of a fixed encoding/json struct so a
// hand-edited macro file can carry extra per-macro fields (comments,
// future metadata) without Unmarshal rejecting the document.
func Marshal(s *Store) ([]byte, error) {
	doc := "{}"
	var err error
	for _, m := range s.All() {
		doc, err = sjson.Set(doc, jsonPath(m.Name, "text"), m.Text)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.Set(doc, jsonPath(m.Name, "arity.kind"), arityKindName(m.Arity.Kind))
		if err != nil {
			return nil, err
		}
		switch m.Arity.Kind {
		case Exactly:
			doc, err = sjson.Set(doc, jsonPath(m.Name, "arity.n"), m.Arity.N)
		case Between:
			doc, err = sjson.Set(doc, jsonPath(m.Name, "arity.n"), m.Arity.N)
			if err == nil {
				doc, err = sjson.Set(doc, jsonPath(m.Name, "arity.max"), m.Arity.Max)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return []byte(doc), nil
}

// Unmarshal parses a document produced by Marshal (or hand-written in
// the same shape) into a fresh Store.
func Unmarshal(data []byte) (*Store, error) {
	root := gjson.ParseBytes(data)
	s := NewStore()
	var defErr error
	root.ForEach(func(key, val gjson.Result) bool {
		kind, ok := parseArityKind(val.Get("arity.kind").String())
		if !ok {
			kind = Any
		}
		m := Macro{
			Name: key.String(),
			Text: val.Get("text").String(),
			Arity: Arity{
				Kind: kind,
				N:    int(val.Get("arity.n").Int()),
				Max:  int(val.Get("arity.max").Int()),
			},
		}
		if err := s.Define(m); err != nil {
			defErr = err
			return false
		}
		return true
	})
	if defErr != nil {
		return nil, defErr
	}
	return s, nil
}

func jsonPath(name, field string) string {
	return fmt.Sprintf("%s.%s", name, field)
}

func arityKindName(k ArityKind) string {
	switch k {
	case None:
		return "none"
	case Exactly:
		return "exactly"
	case Between:
		return "between"
	default:
		return "any"
	}
}

func parseArityKind(s string) (ArityKind, bool) {
	switch s {
	case "none":
		return None, true
	case "exactly":
		return Exactly, true
	case "between":
		return Between, true
	case "any":
		return Any, true
	default:
		return Any, false
	}
}
