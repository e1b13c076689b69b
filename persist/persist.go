// Package persist implements the JSON interchange format for a Project:
// load from and save to the documented wire shape (characteristics as
// bool|number|null, constraint_type as a lowercase string), so external
// collaborators can hand the core a document without ever touching Go
// types directly.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/groupsa/groupsa/model"
)

// ErrMalformedDocument is returned when the input does not conform to the
// documented wire shape (bad constraint_type, a characteristic value that is
// not bool, number, or null, etc).
var ErrMalformedDocument = errors.New("persist: malformed project document")

type wireStudent struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name"`
	Characteristics map[string]wireChar `json:"characteristics"`
	Liked           []int               `json:"liked"`
	Disliked        []int               `json:"disliked"`
}

type wireConstraint struct {
	Characteristic string `json:"characteristic"`
	ConstraintType string `json:"constraint_type"`
	Value          *int   `json:"value"`
}

type wireGroup struct {
	Name             string           `json:"name"`
	MaxSize          int              `json:"max_size"`
	Constraints      []wireConstraint `json:"constraints"`
	StudentIDs       []int            `json:"student_ids"`
	PinnedStudentIDs []int            `json:"pinned_student_ids"`
}

type wireWeights struct {
	LikesWeight           float64            `json:"likes_weight"`
	DislikesWeight        float64            `json:"dislikes_weight"`
	CharacteristicWeights map[string]float64 `json:"characteristic_weights"`
}

type wireProject struct {
	Students []wireStudent `json:"students"`
	Groups   []wireGroup   `json:"groups"`
	Weights  wireWeights   `json:"weights"`
}

// wireChar marshals model.CharValue as bool, number, or null.
type wireChar model.CharValue

func (c wireChar) MarshalJSON() ([]byte, error) {
	switch model.CharValue(c).Kind {
	case model.CharBool:
		return json.Marshal(c.Bool)
	case model.CharNumber:
		return json.Marshal(c.Number)
	default:
		return []byte("null"), nil
	}
}

func (c *wireChar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = wireChar{Kind: model.CharAbsent}
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = wireChar{Kind: model.CharBool, Bool: b}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = wireChar{Kind: model.CharNumber, Number: n}
		return nil
	}

	return fmt.Errorf("%w: characteristic value must be bool, number, or null", ErrMalformedDocument)
}

// Load decodes a Project from its JSON wire shape.
func Load(r io.Reader) (model.Project, error) {
	var w wireProject
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return model.Project{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	p := model.Project{
		Students: make([]model.Student, len(w.Students)),
		Groups:   make([]model.Group, len(w.Groups)),
		Weights: model.Weights{
			LikesWeight:           w.Weights.LikesWeight,
			DislikesWeight:        w.Weights.DislikesWeight,
			CharacteristicWeights: w.Weights.CharacteristicWeights,
		},
	}
	if p.Weights.CharacteristicWeights == nil {
		p.Weights.CharacteristicWeights = map[string]float64{}
	}

	for i, ws := range w.Students {
		chars := make(map[string]model.CharValue, len(ws.Characteristics))
		for k, v := range ws.Characteristics {
			chars[k] = model.CharValue(v)
		}
		p.Students[i] = model.Student{
			ID:              ws.ID,
			Name:            ws.Name,
			Characteristics: chars,
			Liked:           ws.Liked,
			Disliked:        ws.Disliked,
		}
	}

	for i, wg := range w.Groups {
		constraints := make([]model.Constraint, len(wg.Constraints))
		for j, wc := range wg.Constraints {
			kind, err := parseConstraintKind(wc.ConstraintType)
			if err != nil {
				return model.Project{}, err
			}
			value := 0
			if wc.Value != nil {
				value = *wc.Value
			}
			constraints[j] = model.Constraint{Characteristic: wc.Characteristic, Kind: kind, Value: value}
		}
		p.Groups[i] = model.Group{
			Name:             wg.Name,
			MaxSize:          wg.MaxSize,
			Constraints:      constraints,
			StudentIDs:       wg.StudentIDs,
			PinnedStudentIDs: wg.PinnedStudentIDs,
		}
	}

	return p, nil
}

func parseConstraintKind(s string) (model.ConstraintKind, error) {
	switch s {
	case "all":
		return model.All, nil
	case "some":
		return model.Some, nil
	case "max":
		return model.Max, nil
	default:
		return 0, fmt.Errorf("%w: unknown constraint_type %q", ErrMalformedDocument, s)
	}
}

func constraintKindString(k model.ConstraintKind) string {
	switch k {
	case model.All:
		return "all"
	case model.Some:
		return "some"
	case model.Max:
		return "max"
	default:
		return "all"
	}
}

// Save encodes p into its JSON wire shape.
func Save(w io.Writer, p model.Project) error {
	out := wireProject{
		Students: make([]wireStudent, len(p.Students)),
		Groups:   make([]wireGroup, len(p.Groups)),
		Weights: wireWeights{
			LikesWeight:           p.Weights.LikesWeight,
			DislikesWeight:        p.Weights.DislikesWeight,
			CharacteristicWeights: p.Weights.CharacteristicWeights,
		},
	}

	for i, s := range p.Students {
		chars := make(map[string]wireChar, len(s.Characteristics))
		for k, v := range s.Characteristics {
			chars[k] = wireChar(v)
		}
		out.Students[i] = wireStudent{
			ID:              s.ID,
			Name:            s.Name,
			Characteristics: chars,
			Liked:           nonNilInts(s.Liked),
			Disliked:        nonNilInts(s.Disliked),
		}
	}

	for i, g := range p.Groups {
		constraints := make([]wireConstraint, len(g.Constraints))
		for j, c := range g.Constraints {
			value := c.Value
			constraints[j] = wireConstraint{Characteristic: c.Characteristic, ConstraintType: constraintKindString(c.Kind), Value: &value}
		}
		out.Groups[i] = wireGroup{
			Name:             g.Name,
			MaxSize:          g.MaxSize,
			Constraints:      constraints,
			StudentIDs:       nonNilInts(g.StudentIDs),
			PinnedStudentIDs: nonNilInts(g.PinnedStudentIDs),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nonNilInts(ids []int) []int {
	if ids == nil {
		return []int{}
	}

	return ids
}
